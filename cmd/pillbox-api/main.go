// @title         Pillbox API
// @version       0.1.0
// @description   Medicine lookup, search and per member collections
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pillbox/internal/adapters/identity"
	"pillbox/internal/platform/config"
	"pillbox/internal/platform/logger"
	phttp "pillbox/internal/platform/net/http"
	"pillbox/internal/platform/store"

	"pillbox/internal/services/api"
)

func main() {
	// optional .env; real env wins
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")      // pgCfg lives under SERVICE_PGSQL_*
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_") // chCfg lives under SERVICE_CLICKHOUSE_*
	rdsCfg := root.Prefix("SERVICE_REDIS_")     // rdsCfg lives under SERVICE_REDIS_*

	// bring up logging early
	logOpt := logger.FromEnv()
	if logOpt.Service == "" {
		logOpt.Service = "pillbox-api"
	}
	l := logger.Init(logOpt)

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "pillbox-api",
			PG: store.PGConfig{
				Enabled:        true,
				URL:            pgCfg.MustString("DBURL"),
				MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs:    pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:         pgCfg.MayBool("LOG_SQL", true),
				ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 20),
				PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
			},
			CH: store.CHConfig{
				Enabled:    chCfg.MayString("DBURL", "") != "",
				URL:        chCfg.MayString("DBURL", ""),
				ClientName: "pillbox",
				ClientTag:  "api",
			},
			RDS: store.RedisConfig{
				Enabled:  true,
				Addr:     rdsCfg.MayString("ADDR", "localhost:6379"),
				DB:       rdsCfg.MayInt("DB", 0),
				Password: rdsCfg.MayString("PASSWORD", ""),
				Timeout:  rdsCfg.MayDuration("TIMEOUT", 0),
			},
		},
		store.WithLogger(l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	tokens, err := identity.New(identity.FromConfig(root))
	if err != nil {
		l.Panic().Err(err).Msg("identity setup failed")
	}

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// modules read CORE_DETECT_*, CORE_LABELS_* and SERVICE_CLICKHOUSE_TABLE, so they get the root view
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Tokens:         tokens,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

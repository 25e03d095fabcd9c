package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"pillbox/internal/modkit"
	"pillbox/internal/platform/config"
	"pillbox/internal/platform/logger"
	"pillbox/internal/platform/store"
)

// app carries what every subcommand shares
type app struct {
	cfg config.Conf
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.New(), log: logger.Get()}

	root := &cobra.Command{
		Use:   "pillbox-admin",
		Short: "Pillbox operations CLI",
		Long: `pillbox-admin runs maintenance tasks against the pillbox stores.

COMMANDS:
  migrate   Apply, roll back or list postgres schema migrations
  reindex   Rebuild the clickhouse search index from the catalog
  member    Create or update a member
  token     Print a bearer token for a member

Configuration comes from the environment (and an optional .env file).`,
		SilenceUsage: true,
	}
	root.AddCommand(
		a.migrateCmd(),
		a.reindexCmd(),
		a.memberCmd(),
		a.tokenCmd(),
	)
	return root
}

// openStore opens postgres, plus clickhouse when withCH is set
func (a *app) openStore(ctx context.Context, withCH bool) (*store.Store, error) {
	pgCfg := a.cfg.Prefix("SERVICE_PGSQL_")
	cfg := store.Config{
		AppName: "pillbox-admin",
		PG: store.PGConfig{
			Enabled:        true,
			URL:            pgCfg.MustString("DBURL"),
			MaxConns:       int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:         pgCfg.MayBool("LOG_SQL", false),
			ConnectRetries: pgCfg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pgCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
	}
	if withCH {
		cfg.CH = store.CHConfig{
			Enabled:    true,
			URL:        a.cfg.Prefix("SERVICE_CLICKHOUSE_").MustString("DBURL"),
			ClientName: "pillbox",
			ClientTag:  "admin",
		}
	}
	return store.Open(ctx, cfg, store.WithLogger(a.log))
}

// deps builds module deps over an open store
func (a *app) deps(st *store.Store) modkit.Deps {
	return modkit.Deps{
		Cfg: a.cfg,
		PG:  st.PG,
		CH:  st.CH,
		Log: *a.log,
	}
}

// closeStore logs rather than masks the command's own error
func (a *app) closeStore(st *store.Store) {
	if err := st.Close(context.Background()); err != nil {
		a.log.Error().Err(err).Msg("failed to close store")
	}
}

package store

import (
	"context"
	"fmt"
	"time"

	"pillbox/internal/platform/logger"
	"pillbox/internal/platform/retry"
	chx "pillbox/internal/platform/store/ch"
	"pillbox/internal/platform/store/pg"
	"pillbox/internal/platform/store/rds"
)

// openPG opens pg, waits for the pool to answer, then wraps it with the traced adapter
func openPG(ctx context.Context, cfg Config, log logger.Logger) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
		AppName:  cfg.AppName,
	}, tracer)
	if err != nil {
		return nil, err
	}

	// ping the pool directly so boot probes stay out of the sql trace
	err = waitReady(ctx, p.Pool.Ping, cfg.PG.ConnectRetries, cfg.PG.PingTimeout, func(attempt int, err error) {
		log.Warn().Err(err).Int("attempt", attempt).Msg("postgres not ready")
	})
	if err != nil {
		p.Close()
		return nil, err
	}
	return newPGAdapter(p), nil
}

// waitReady pings until it succeeds, retries run out or ctx ends
// waits double from 150ms up to 2s; zero retries or timeout take the defaults
func waitReady(ctx context.Context, ping func(context.Context) error, retries int, timeout time.Duration, onFail func(int, error)) error {
	if retries <= 0 {
		retries = defaultConnectRetries
	}
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	attempt := 0
	err := retry.Do(ctx, retry.Policy{Attempts: retries, Base: 150 * time.Millisecond, Max: 2 * time.Second}, func() error {
		attempt++
		toCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return ping(toCtx)
	}, func(err error, _ time.Duration) {
		if onFail != nil {
			onFail(attempt, err)
		}
	})
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	}
	return fmt.Errorf("postgres ping failed after %d attempts: %w", attempt, err)
}

// openCH opens clickhouse and pings once so a bad DSN fails at boot
func openCH(ctx context.Context, cfg Config, _ logger.Logger) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:        cfg.CH.URL,
		ClientName: cfg.CH.ClientName,
		ClientTag:  cfg.CH.ClientTag,
	})
	if err != nil {
		return nil, err
	}
	toCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(toCtx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("clickhouse ping failed: %w", err)
	}
	return newCHAdapter(c), nil
}

// openRDS opens redis and pings once; command errors after boot are logged per call
func openRDS(ctx context.Context, cfg Config, log logger.Logger) (Redis, error) {
	c, err := rds.Open(rds.Config{
		Addr:         cfg.RDS.Addr,
		DB:           cfg.RDS.DB,
		Password:     cfg.RDS.Password,
		DialTimeout:  cfg.RDS.Timeout,
		ReadTimeout:  cfg.RDS.Timeout,
		WriteTimeout: cfg.RDS.Timeout,
	}, log.With().Str("component", "redis").Logger())
	if err != nil {
		return nil, err
	}
	toCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.Ping(toCtx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return c, nil
}

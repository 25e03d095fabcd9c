// Package store opens the postgres, clickhouse and redis backends behind small seams
// repos depend on the seams so tests can swap in fakes or miniredis
package store

import (
	"context"
	"errors"
	"fmt"

	"pillbox/internal/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Row scans a single result row
type Row interface {
	Scan(dest ...any) error
}

// Rows iterates a result set; callers must Close it
type Rows interface {
	Row
	Next() bool
	Err() error
	Close()
	Columns() []string
}

// CommandTag reports what a statement did
type CommandTag interface {
	String() string
	RowsAffected() int64
}

// RowQuerier runs sql inside or outside a transaction
type RowQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) Row
}

// TxRunner is the postgres seam
// fn runs in one transaction, committed when it returns nil
type TxRunner interface {
	RowQuerier
	Tx(ctx context.Context, fn func(q RowQuerier) error) error
}

// Clickhouse is the search index seam
type Clickhouse interface {
	Insert(ctx context.Context, table string, data any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// Redis is the search log seam; *rds.Client satisfies it
type Redis interface {
	Run(ctx context.Context, script *redis.Script, keys []string, args ...any) (any, error)
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LRem(ctx context.Context, key string, count int64, value string) (int64, error)
	Del(ctx context.Context, keys ...string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// Pinger reports readiness
type Pinger interface{ Ping(context.Context) error }

// Store holds whichever backends were enabled; disabled ones stay nil
type Store struct {
	Log logger.Logger

	PG  TxRunner
	CH  Clickhouse
	RDS Redis
}

// Option configures Open
type Option func(*Store)

// WithLogger routes backend logs, sql traces included, through l
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.Log = *l
		}
	}
}

// Open brings up the enabled backends in order pg, clickhouse, redis
// on failure the ones already open are closed and no store is returned
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	s := &Store{Log: *logger.Get()}
	for _, o := range opts {
		o(s)
	}

	if cfg.PG.Enabled {
		c, err := openPG(ctx, cfg, s.Log)
		if err != nil {
			return nil, err
		}
		s.PG = c
	}
	if cfg.CH.Enabled {
		c, err := openCH(ctx, cfg, s.Log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.CH = c
	}
	if cfg.RDS.Enabled {
		c, err := openRDS(ctx, cfg, s.Log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.RDS = c
	}
	return s, nil
}

type seam struct {
	name string
	v    any
}

func (s *Store) seams() []seam {
	return []seam{{"pg", s.PG}, {"ch", s.CH}, {"redis", s.RDS}}
}

// Guard pings every open backend that can be pinged and joins the failures
func (s *Store) Guard(ctx context.Context) error {
	if s == nil {
		return errors.New("store: not opened")
	}
	var errs []error
	for _, sm := range s.seams() {
		p, ok := sm.v.(Pinger)
		if !ok {
			continue
		}
		if err := p.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sm.name, err))
		}
	}
	return errors.Join(errs...)
}

// Close shuts backends down in reverse open order
func (s *Store) Close(context.Context) error {
	var errs []error
	all := s.seams()
	for i := len(all) - 1; i >= 0; i-- {
		c, ok := all[i].v.(interface{ Close() error })
		if !ok {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", all[i].name, err))
		}
	}
	return errors.Join(errs...)
}

package store

import (
	"context"
	"fmt"

	"pillbox/internal/platform/store/ch"
)

// chConn is what the adapter needs from *ch.CH
type chConn interface {
	Insert(ctx context.Context, table string, rows [][]any) error
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (ch.Rows, error)
	Ping(ctx context.Context) error
	Close() error
}

// chStore narrows *ch.CH to the Clickhouse seam
// Insert takes [][]any so callers stay free of driver batch types
type chStore struct{ conn chConn }

func newCHAdapter(c chConn) Clickhouse { return chStore{conn: c} }

func (s chStore) Insert(ctx context.Context, table string, data any) error {
	switch rows := data.(type) {
	case [][]any:
		return s.conn.Insert(ctx, table, rows)
	case []any:
		return s.conn.Insert(ctx, table, [][]any{rows})
	default:
		return fmt.Errorf("store: clickhouse insert into %s wants rows as [][]any, got %T", table, data)
	}
}

func (s chStore) Exec(ctx context.Context, sql string, args ...any) error {
	return s.conn.Exec(ctx, sql, args...)
}

func (s chStore) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	rs, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{rs}, nil
}

func (s chStore) Ping(ctx context.Context) error { return s.conn.Ping(ctx) }

func (s chStore) Close() error { return s.conn.Close() }

// chRows drops the Close error so ch.Rows fits store.Rows
type chRows struct{ ch.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }

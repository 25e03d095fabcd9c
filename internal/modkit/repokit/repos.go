// Package repokit holds the seams repositories are written against
//
// Repos take a Queryer so the same code runs on the pool or inside a
// transaction. Services hold a TxRunner and rebind their repo per tx through
// a Binder
package repokit

import (
	"context"

	"pillbox/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag

	// Clickhouse is the columnar search index seam
	Clickhouse = store.Clickhouse

	// Redis is the key value seam
	Redis = store.Redis
)

// WithTx runs fn inside a transaction on tx
// fn gets the tx bound Queryer; returning an error rolls back
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}

// Package domain holds the indexer types and ports
package domain

import (
	"context"
	"time"
)

// Doc is one catalog row as stored in the search index
type Doc struct {
	ID      int64
	Name    string
	Company string
	Image   string
}

// Stats summarizes one run
type Stats struct {
	Pages   int
	Docs    int
	LastID  int64
	Elapsed time.Duration
}

// RunnerPort is what the admin tool calls
type RunnerPort interface {
	Reindex(ctx context.Context, opt RunOptions) (Stats, error)
}

// RunOptions tunes a single run
type RunOptions struct {
	// Truncate empties the index first so deleted catalog rows disappear
	Truncate bool
	// DryRun reads the catalog without writing
	DryRun bool
}

// Source pages through the catalog in id order
type Source interface {
	After(ctx context.Context, afterID int64, limit int) ([]Doc, error)
}

// Sink owns the search table
type Sink interface {
	EnsureTable(ctx context.Context) error
	Truncate(ctx context.Context) error
	Write(ctx context.Context, docs []Doc, at time.Time) error
}

// Package repo reads the catalog from postgres and writes the clickhouse search table
package repo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"pillbox/internal/modkit/repokit"
	"pillbox/internal/platform/store"
	"pillbox/internal/services/indexer/domain"

	sq "github.com/Masterminds/squirrel"
)

var (
	psql      = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
)

// Catalog is the postgres Source
type Catalog struct{ q repokit.Queryer }

// NewCatalog binds a Catalog to q
func NewCatalog(q repokit.Queryer) *Catalog {
	return &Catalog{q: repokit.RequireQueryer(q)}
}

// After returns up to limit rows with id > afterID in id order
func (c *Catalog) After(ctx context.Context, afterID int64, limit int) ([]domain.Doc, error) {
	sql, args, err := psql.
		Select("id", "name", "company", "image").
		From("medicines").
		Where(sq.Gt{"id": afterID}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := c.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return store.Collect(rows, func(r store.Row) (domain.Doc, error) {
		var d domain.Doc
		return d, r.Scan(&d.ID, &d.Name, &d.Company, &d.Image)
	})
}

// Search is the clickhouse Sink
type Search struct {
	ch    store.Clickhouse
	table string
}

// NewSearch returns a Sink over table; the name must be a plain or db qualified identifier
func NewSearch(ch store.Clickhouse, table string) *Search {
	if ch == nil {
		panic("indexer: nil clickhouse")
	}
	if !tableName.MatchString(table) {
		panic(fmt.Sprintf("indexer: invalid table %q", table))
	}
	return &Search{ch: ch, table: table}
}

// EnsureTable creates the search table when missing
// ReplacingMergeTree keeps the newest indexed_at per id so reruns converge
func (s *Search) EnsureTable(ctx context.Context) error {
	return s.ch.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         Int64,
			name       String,
			company    String,
			image      String,
			indexed_at DateTime
		)
		ENGINE = ReplacingMergeTree(indexed_at)
		ORDER BY id`, s.table))
}

// Truncate removes every document
func (s *Search) Truncate(ctx context.Context) error {
	return s.ch.Exec(ctx, "TRUNCATE TABLE IF EXISTS "+s.table)
}

// Write appends one batch
func (s *Search) Write(ctx context.Context, docs []domain.Doc, at time.Time) error {
	rows := make([][]any, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []any{d.ID, d.Name, d.Company, d.Image, at.UTC()})
	}
	return s.ch.Insert(ctx, s.table, rows)
}

// Package repo provides catalog lookups over postgres and text search over clickhouse
package repo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/store"
	"pillbox/internal/services/api/medicines/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// DefaultSearchTable is the clickhouse table the indexer fills
const DefaultSearchTable = "medicine_search"

// Repo is the storage contract for medicines
type Repo interface {
	ByID(ctx context.Context, id int64) (domain.CatalogItem, error)
	ByCode(ctx context.Context, code string) (domain.CatalogItem, error)

	CountMatches(ctx context.Context, term string) (int, error)
	FindMatches(ctx context.Context, term string, limit, offset int) ([]domain.SearchDoc, error)
}

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

	// ErrSearchDisabled is returned when no clickhouse seam is configured
	ErrSearchDisabled = perr.Unavailablef("search index is not configured")
)

// relevance orders hits by where the term first occurs, then by shorter names, then by id
const relevance = "positionCaseInsensitiveUTF8(name, ?) ASC, lengthUTF8(name) ASC, id ASC"

// NewHybrid constructs a storage binder using PG for the catalog and CH for search
func NewHybrid(ch store.Clickhouse, table string) repokit.Binder[Repo] {
	if table == "" {
		table = DefaultSearchTable
	}
	if !tableName.MatchString(table) {
		panic(fmt.Sprintf("medicines repo: invalid search table %q", table))
	}
	return &hybridBinder{ch: ch, table: table}
}

type hybridBinder struct {
	ch    store.Clickhouse
	table string
}

// Bind binds a Queryer to produce a Repo
func (b *hybridBinder) Bind(q repokit.Queryer) Repo {
	return &hybridStore{pg: q, ch: b.ch, table: b.table}
}

type hybridStore struct {
	pg    repokit.Queryer
	ch    store.Clickhouse
	table string
}

func (s *hybridStore) ByID(ctx context.Context, id int64) (domain.CatalogItem, error) {
	return s.one(ctx, sq.Eq{"id": id})
}

func (s *hybridStore) ByCode(ctx context.Context, code string) (domain.CatalogItem, error) {
	return s.one(ctx, sq.Eq{"code": code})
}

func (s *hybridStore) one(ctx context.Context, where sq.Eq) (domain.CatalogItem, error) {
	sql, args, err := psql.
		Select("id", "code", "name", "company", "ingredient", "image").
		From("medicines").
		Where(where).
		ToSql()
	if err != nil {
		return domain.CatalogItem{}, err
	}
	var it domain.CatalogItem
	err = s.pg.QueryRow(ctx, sql, args...).Scan(&it.ID, &it.Code, &it.Name, &it.Company, &it.Ingredient, &it.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CatalogItem{}, perr.ErrNotFound
	}
	return it, err
}

// CountMatches counts index documents whose name contains term, ignoring case
func (s *hybridStore) CountMatches(ctx context.Context, term string) (int, error) {
	if s.ch == nil {
		return 0, ErrSearchDisabled
	}
	sql := fmt.Sprintf(`
		SELECT count()
		FROM %s FINAL
		WHERE positionCaseInsensitiveUTF8(name, ?) > 0
	`, s.table)

	rs, err := s.ch.Query(ctx, sql, term)
	if err != nil {
		return 0, err
	}
	n, err := store.Scalar[uint64](rs)
	return int(n), err
}

// FindMatches returns one window of matches in relevance order
func (s *hybridStore) FindMatches(ctx context.Context, term string, limit, offset int) ([]domain.SearchDoc, error) {
	if s.ch == nil {
		return nil, ErrSearchDisabled
	}
	sql := fmt.Sprintf(`
		SELECT id, name, company, image
		FROM %s FINAL
		WHERE positionCaseInsensitiveUTF8(name, ?) > 0
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, s.table, relevance)

	rs, err := s.ch.Query(ctx, sql, term, term, limit, offset)
	if err != nil {
		return nil, err
	}
	return store.Collect(rs, func(r store.Row) (domain.SearchDoc, error) {
		var d domain.SearchDoc
		return d, r.Scan(&d.ID, &d.Name, &d.Company, &d.Image)
	})
}

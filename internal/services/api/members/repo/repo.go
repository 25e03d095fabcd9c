// Package repo provides member storage over postgres
package repo

import (
	"context"
	"errors"

	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/services/api/members/domain"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Repo is the storage contract for members
type Repo interface {
	ByID(ctx context.Context, id int64) (domain.Member, error)
	Upsert(ctx context.Context, email, name, picture string) (int64, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type (
	// PG binds Repo to the members table
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG returns the postgres binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a queryer, either the pool or a tx
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// ByID returns a member that has not been deleted
func (r *queries) ByID(ctx context.Context, id int64) (domain.Member, error) {
	sql, args, err := psql.
		Select("id", "name", "email", "picture").
		From("members").
		Where(sq.Eq{"id": id, "deleted": false}).
		ToSql()
	if err != nil {
		return domain.Member{}, err
	}
	var m domain.Member
	err = r.q.QueryRow(ctx, sql, args...).Scan(&m.ID, &m.Name, &m.Email, &m.Picture)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Member{}, perr.ErrNotFound
	}
	return m, err
}

// Upsert inserts by email or refreshes the profile of the existing row
// a soft deleted member signing in again is restored
func (r *queries) Upsert(ctx context.Context, email, name, picture string) (int64, error) {
	sql, args, err := psql.
		Insert("members").
		Columns("email", "name", "picture").
		Values(email, name, picture).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, picture = EXCLUDED.picture, deleted = FALSE, updated_at = now() RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

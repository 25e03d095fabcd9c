package owned

import (
	"context"
	"errors"
	"time"

	"pillbox/internal/core/apierr"
	"pillbox/internal/core/paging"
	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/store"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Record is one owned row joined with its medicine
type Record struct {
	ID              int64
	MemberID        int64
	MedicineID      int64
	MedicineName    string
	MedicineCompany string
	MedicineImage   string
	CreatedAt       time.Time
}

// Repo is the storage contract for one owned collection table
type Repo interface {
	Count(ctx context.Context, memberID int64) (int, error)
	Page(ctx context.Context, memberID int64, dir paging.Direction, limit, offset int) ([]Record, error)
	Get(ctx context.Context, id int64) (Record, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context, memberID int64) (int64, error)
	Insert(ctx context.Context, memberID, medicineID int64) (int64, error)
	ExistsMany(ctx context.Context, memberID int64, medicineIDs []int64) (map[int64]bool, error)
}

// psql renders $n placeholders for pgx
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type (
	// PG binds Repo to a postgres table with (id, member_id, medicine_id, created_at)
	PG struct{ table string }

	queries struct {
		q     repokit.Queryer
		table string
	}
)

// NewPG returns a binder for the given table; the name is a trusted constant
func NewPG(table string) repokit.Binder[Repo] {
	if table == "" {
		panic("owned: empty table name")
	}
	return PG{table: table}
}

// Bind binds a queryer, either the pool or a tx
func (p PG) Bind(q repokit.Queryer) Repo { return &queries{q: q, table: p.table} }

func (r *queries) Count(ctx context.Context, memberID int64) (int, error) {
	sql, args, err := psql.Select("count(*)").From(r.table).Where(sq.Eq{"member_id": memberID}).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *queries) Page(ctx context.Context, memberID int64, dir paging.Direction, limit, offset int) ([]Record, error) {
	order := dir.SQL()
	sql, args, err := psql.
		Select("o.id", "o.member_id", "o.medicine_id", "m.name", "m.company", "m.image", "o.created_at").
		From(r.table + " o").
		Join("medicines m ON m.id = o.medicine_id").
		Where(sq.Eq{"o.member_id": memberID}).
		OrderBy("o.created_at "+order, "o.id "+order).
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return store.Collect(rows, scanRecord)
}

func (r *queries) Get(ctx context.Context, id int64) (Record, error) {
	sql, args, err := psql.
		Select("o.id", "o.member_id", "o.medicine_id", "m.name", "m.company", "m.image", "o.created_at").
		From(r.table + " o").
		Join("medicines m ON m.id = o.medicine_id").
		Where(sq.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return Record{}, err
	}
	rec, err := scanRecord(r.q.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, perr.ErrNotFound
	}
	return rec, err
}

func (r *queries) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete(r.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.ErrNotFound
	}
	return nil
}

func (r *queries) DeleteAll(ctx context.Context, memberID int64) (int64, error) {
	sql, args, err := psql.Delete(r.table).Where(sq.Eq{"member_id": memberID}).ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Insert links a member to a medicine in one statement; a missing medicine
// yields no row, a duplicate pair surfaces the unique violation untouched
func (r *queries) Insert(ctx context.Context, memberID, medicineID int64) (int64, error) {
	sql := `
insert into ` + r.table + ` (member_id, medicine_id)
select $1, m.id from medicines m where m.id = $2
returning id
`
	var id int64
	err := r.q.QueryRow(ctx, sql, memberID, medicineID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apierr.ErrMedicineNotExist
	}
	return id, err
}

func (r *queries) ExistsMany(ctx context.Context, memberID int64, medicineIDs []int64) (map[int64]bool, error) {
	out := make(map[int64]bool, len(medicineIDs))
	if len(medicineIDs) == 0 {
		return out, nil
	}
	sql, args, err := psql.
		Select("DISTINCT medicine_id").
		From(r.table).
		Where(sq.Eq{"member_id": memberID, "medicine_id": medicineIDs}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	ids, err := store.Collect(rows, func(row store.Row) (int64, error) {
		var id int64
		return id, row.Scan(&id)
	})
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func scanRecord(row store.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.MemberID,
		&rec.MedicineID,
		&rec.MedicineName,
		&rec.MedicineCompany,
		&rec.MedicineImage,
		&rec.CreatedAt,
	)
	return rec, err
}

package owned

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pillbox/internal/core/apierr"
	"pillbox/internal/core/paging"
	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
)

// recQ records the statements a repo sends
type recQ struct {
	sql  []string
	args [][]any

	rowErr   error
	affected int64
	ids      []int64
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type tag int64

func (t tag) String() string      { return "" }
func (t tag) RowsAffected() int64 { return int64(t) }

type idRows struct {
	ids []int64
	i   int
}

func (r *idRows) Next() bool { r.i++; return r.i <= len(r.ids) }
func (r *idRows) Scan(dst ...any) error {
	*(dst[0].(*int64)) = r.ids[r.i-1]
	return nil
}
func (r *idRows) Err() error        { return nil }
func (r *idRows) Close()            {}
func (r *idRows) Columns() []string { return []string{"medicine_id"} }

func (q *recQ) record(sql string, args []any) {
	q.sql = append(q.sql, strings.Join(strings.Fields(sql), " "))
	q.args = append(q.args, args)
}

func (q *recQ) Exec(_ context.Context, sql string, args ...any) (repokit.CommandTag, error) {
	q.record(sql, args)
	return tag(q.affected), nil
}

func (q *recQ) Query(_ context.Context, sql string, args ...any) (repokit.Rows, error) {
	q.record(sql, args)
	return &idRows{ids: q.ids}, nil
}

func (q *recQ) QueryRow(_ context.Context, sql string, args ...any) repokit.Row {
	q.record(sql, args)
	return errRow{err: q.rowErr}
}

func TestRepo_PageOrdersWithTiebreak(t *testing.T) {
	t.Parallel()
	q := &recQ{}
	r := NewPG("favorites").Bind(q)

	if _, err := r.Page(context.Background(), 42, paging.Asc, 6, 12); err != nil {
		t.Fatalf("Page: %v", err)
	}
	want := "SELECT o.id, o.member_id, o.medicine_id, m.name, m.company, m.image, o.created_at " +
		"FROM favorites o JOIN medicines m ON m.id = o.medicine_id WHERE o.member_id = $1 " +
		"ORDER BY o.created_at ASC, o.id ASC LIMIT 6 OFFSET 12"
	if diff := cmp.Diff(want, q.sql[0]); diff != "" {
		t.Fatalf("sql mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{int64(42)}, q.args[0]); diff != "" {
		t.Fatalf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestRepo_InsertMissingMedicine(t *testing.T) {
	t.Parallel()
	q := &recQ{rowErr: pgx.ErrNoRows}
	r := NewPG("detection_logs").Bind(q)

	_, err := r.Insert(context.Background(), 1, 2)
	if !errors.Is(err, apierr.ErrMedicineNotExist) {
		t.Fatalf("err = %v, want MEDICINE_NOT_EXIST", err)
	}
	if !strings.HasPrefix(q.sql[0], "insert into detection_logs (member_id, medicine_id) select $1, m.id from medicines m") {
		t.Fatalf("unexpected insert: %s", q.sql[0])
	}
}

func TestRepo_GetNotFound(t *testing.T) {
	t.Parallel()
	q := &recQ{rowErr: pgx.ErrNoRows}
	if _, err := NewPG("favorites").Bind(q).Get(context.Background(), 9); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestRepo_DeleteNothingAffected(t *testing.T) {
	t.Parallel()
	q := &recQ{affected: 0}
	r := NewPG("favorites").Bind(q)
	if err := r.Delete(context.Background(), 9); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if q.sql[0] != "DELETE FROM favorites WHERE id = $1" {
		t.Fatalf("sql = %s", q.sql[0])
	}
}

func TestRepo_DeleteAllIsOneStatement(t *testing.T) {
	t.Parallel()
	q := &recQ{affected: 3}
	n, err := NewPG("favorites").Bind(q).DeleteAll(context.Background(), 42)
	if err != nil || n != 3 {
		t.Fatalf("DeleteAll = %d, %v", n, err)
	}
	if len(q.sql) != 1 || q.sql[0] != "DELETE FROM favorites WHERE member_id = $1" {
		t.Fatalf("sql = %v", q.sql)
	}
}

func TestRepo_ExistsManyBatches(t *testing.T) {
	t.Parallel()
	q := &recQ{ids: []int64{3}}
	r := NewPG("favorites").Bind(q)

	got, err := r.ExistsMany(context.Background(), 42, []int64{1, 3})
	if err != nil {
		t.Fatalf("ExistsMany: %v", err)
	}
	if diff := cmp.Diff(map[int64]bool{3: true}, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	want := "SELECT DISTINCT medicine_id FROM favorites WHERE medicine_id IN ($1,$2) AND member_id = $3"
	if q.sql[0] != want {
		t.Fatalf("sql = %s", q.sql[0])
	}

	q2 := &recQ{}
	if _, err := NewPG("favorites").Bind(q2).ExistsMany(context.Background(), 42, nil); err != nil || len(q2.sql) != 0 {
		t.Fatalf("empty batch should not query: %v %v", err, q2.sql)
	}
}

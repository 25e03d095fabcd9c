package store

import (
	"context"
	"errors"
	"testing"

	"pillbox/internal/platform/store/pg"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

// memRows serves int64/string rows from memory
type memRows struct {
	pgx.Rows
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func (r *memRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i] = pgconn.FieldDescription{Name: c}
	}
	return out
}
func (r *memRows) Next() bool { r.idx++; return r.err == nil && r.idx <= len(r.data) }
func (r *memRows) Err() error { return r.err }
func (r *memRows) Close()     { r.closed = true }
func (r *memRows) Scan(dest ...any) error {
	vals := r.data[r.idx-1]
	if len(vals) != len(dest) {
		return errors.New("column count mismatch")
	}
	for i, v := range vals {
		switch p := dest[i].(type) {
		case *int64:
			*p = v.(int64)
		case *string:
			*p = v.(string)
		default:
			return errors.New("unsupported dest")
		}
	}
	return nil
}

// fakeQuerier records statements and answers with canned results
type fakeQuerier struct {
	sqls []string
	err  error
	rows *memRows
	scan scanFunc
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	return pgconn.NewCommandTag("DELETE 2"), f.err
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	f.sqls = append(f.sqls, sql)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.sqls = append(f.sqls, sql)
	return f.scan
}

type recTracer struct{ events []pg.QueryEvent }

func (r *recTracer) OnQuery(_ context.Context, ev pg.QueryEvent) { r.events = append(r.events, ev) }

func TestTraced_ExecReportsTag(t *testing.T) {
	t.Parallel()
	fq := &fakeQuerier{}
	tr := &recTracer{}
	q := traced{q: fq, tracer: tr, slowUS: -1}

	ct, err := q.Exec(context.Background(), "DELETE FROM favorites WHERE member_id = $1", int64(7))
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if ct.RowsAffected() != 2 || ct.String() != "DELETE 2" {
		t.Fatalf("tag = %q affected=%d", ct.String(), ct.RowsAffected())
	}
	if len(tr.events) != 1 || tr.events[0].Slow || tr.events[0].SQL != fq.sqls[0] {
		t.Fatalf("events = %+v", tr.events)
	}
}

func TestTraced_QueryWrapsRows(t *testing.T) {
	t.Parallel()
	mr := &memRows{cols: []string{"id", "name"}, data: [][]any{{int64(1), "타이레놀"}, {int64(2), "게보린"}}}
	q := traced{q: &fakeQuerier{rows: mr}}

	rs, err := q.Query(context.Background(), "SELECT id, name FROM medicines")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if diff := cmp.Diff([]string{"id", "name"}, rs.Columns()); diff != "" {
		t.Fatalf("columns (-want +got):\n%s", diff)
	}
	var names []string
	for rs.Next() {
		var id int64
		var name string
		if err := rs.Scan(&id, &name); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		names = append(names, name)
	}
	rs.Close()
	if rs.Err() != nil || !mr.closed {
		t.Fatalf("err=%v closed=%v", rs.Err(), mr.closed)
	}
	if diff := cmp.Diff([]string{"타이레놀", "게보린"}, names); diff != "" {
		t.Fatalf("names (-want +got):\n%s", diff)
	}
}

func TestTraced_QueryRowReportsScanError(t *testing.T) {
	t.Parallel()
	boom := errors.New("no rows in result set")
	tr := &recTracer{}
	q := traced{q: &fakeQuerier{scan: func(...any) error { return boom }}, tracer: tr}

	var n int64
	if err := q.QueryRow(context.Background(), "SELECT count(*) FROM favorites").Scan(&n); !errors.Is(err, boom) {
		t.Fatalf("Scan err = %v", err)
	}
	if len(tr.events) != 1 || !errors.Is(tr.events[0].Err, boom) {
		t.Fatalf("scan error not traced: %+v", tr.events)
	}
	if !tr.events[0].Slow {
		t.Fatalf("slowUS=0 should flag every query as slow")
	}
}

func TestTraced_PropagatesErrors(t *testing.T) {
	t.Parallel()
	boom := errors.New("conn closed")
	q := traced{q: &fakeQuerier{err: boom}}

	if _, err := q.Exec(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("Exec err = %v", err)
	}
	if rs, err := q.Query(context.Background(), "x"); !errors.Is(err, boom) || rs != nil {
		t.Fatalf("Query = %v, %v", rs, err)
	}
}

// fakeTx tracks how a transaction ended
type fakeTx struct {
	pgx.Tx
	committed, rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error { f.committed = true; return nil }
func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

func TestRunTx(t *testing.T) {
	t.Parallel()

	ok := &fakeTx{}
	if err := runTx(context.Background(), ok, nil, func(RowQuerier) error { return nil }); err != nil {
		t.Fatalf("runTx: %v", err)
	}
	if !ok.committed || ok.rolledBack {
		t.Fatalf("success path: %+v", ok)
	}

	failed := &fakeTx{}
	boom := errors.New("insert failed")
	if err := runTx(context.Background(), failed, nil, func(RowQuerier) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("runTx err = %v", err)
	}
	if failed.committed || !failed.rolledBack {
		t.Fatalf("error path: %+v", failed)
	}

	panicked := &fakeTx{}
	func() {
		defer func() { _ = recover() }()
		_ = runTx(context.Background(), panicked, nil, func(RowQuerier) error { panic("bad row") })
	}()
	if !panicked.rolledBack {
		t.Fatalf("panic should roll back")
	}
}

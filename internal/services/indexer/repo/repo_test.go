package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"pillbox/internal/platform/store"
	"pillbox/internal/platform/testkit"
	"pillbox/internal/services/indexer/domain"

	"github.com/google/go-cmp/cmp"
)

type recCH struct {
	execs   []string
	table   string
	inserts [][]any
}

func (r *recCH) Insert(_ context.Context, table string, data any) error {
	r.table = table
	r.inserts = data.([][]any)
	return nil
}
func (r *recCH) Exec(_ context.Context, sql string, _ ...any) error {
	r.execs = append(r.execs, strings.Join(strings.Fields(sql), " "))
	return nil
}
func (r *recCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (r *recCH) Close() error                                             { return nil }

func TestSearch_EnsureAndTruncate(t *testing.T) {
	t.Parallel()
	ch := &recCH{}
	s := NewSearch(ch, "medicine_search")
	_ = s.EnsureTable(context.Background())
	_ = s.Truncate(context.Background())

	testkit.MustContain(t, ch.execs[0], "CREATE TABLE IF NOT EXISTS medicine_search")
	testkit.MustContain(t, ch.execs[0], "ENGINE = ReplacingMergeTree(indexed_at) ORDER BY id")
	if ch.execs[1] != "TRUNCATE TABLE IF EXISTS medicine_search" {
		t.Fatalf("truncate = %q", ch.execs[1])
	}
}

func TestSearch_WriteRowShape(t *testing.T) {
	t.Parallel()
	ch := &recCH{}
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*3600))
	err := NewSearch(ch, "medicine_search").Write(context.Background(), []domain.Doc{{ID: 1, Name: "a", Company: "c", Image: "i"}}, at)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := [][]any{{int64(1), "a", "c", "i", at.UTC()}}
	if ch.table != "medicine_search" {
		t.Fatalf("table = %q", ch.table)
	}
	if diff := cmp.Diff(want, ch.inserts); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
}

func TestNewSearch_Guards(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { NewSearch(nil, "t") })
	testkit.MustPanic(t, func() { NewSearch(&recCH{}, "t; DROP") })
}

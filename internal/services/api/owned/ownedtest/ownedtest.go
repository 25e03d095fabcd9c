// Package ownedtest provides in-memory doubles for the owned collection engine
package ownedtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"pillbox/internal/core/apierr"
	"pillbox/internal/core/paging"
	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/services/api/owned"

	"github.com/jackc/pgx/v5/pgconn"
)

// MemRepo is an in-memory owned.Repo with an optional unique (member, medicine) constraint
type MemRepo struct {
	mu        sync.Mutex
	next      int64
	rows      map[int64]owned.Record
	medicines map[int64]bool
	unique    bool
	clock     time.Time

	// DeleteAllCalls counts set based deletes
	DeleteAllCalls int
}

// NewMemRepo returns a repo where only the listed medicines exist
func NewMemRepo(unique bool, medicines ...int64) *MemRepo {
	m := &MemRepo{
		rows:      map[int64]owned.Record{},
		medicines: map[int64]bool{},
		unique:    unique,
		clock:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, id := range medicines {
		m.medicines[id] = true
	}
	return m
}

func (m *MemRepo) Count(_ context.Context, memberID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.rows {
		if r.MemberID == memberID {
			n++
		}
	}
	return n, nil
}

func (m *MemRepo) Page(_ context.Context, memberID int64, dir paging.Direction, limit, offset int) ([]owned.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []owned.Record
	for _, r := range m.rows {
		if r.MemberID == memberID {
			all = append(all, r)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if dir == paging.Asc {
			return all[i].ID < all[j].ID
		}
		return all[i].ID > all[j].ID
	})
	if offset >= len(all) {
		return []owned.Record{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (m *MemRepo) Get(_ context.Context, id int64) (owned.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return owned.Record{}, perr.ErrNotFound
	}
	return r, nil
}

func (m *MemRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return perr.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *MemRepo) DeleteAll(_ context.Context, memberID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteAllCalls++
	var n int64
	for id, r := range m.rows {
		if r.MemberID == memberID {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

func (m *MemRepo) Insert(_ context.Context, memberID, medicineID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.medicines[medicineID] {
		return 0, apierr.ErrMedicineNotExist
	}
	if m.unique {
		for _, r := range m.rows {
			if r.MemberID == memberID && r.MedicineID == medicineID {
				return 0, &pgconn.PgError{Code: "23505", ConstraintName: "favorites_member_medicine_key"}
			}
		}
	}
	m.next++
	m.clock = m.clock.Add(time.Second)
	m.rows[m.next] = owned.Record{
		ID:           m.next,
		MemberID:     memberID,
		MedicineID:   medicineID,
		MedicineName: "medicine",
		CreatedAt:    m.clock,
	}
	return m.next, nil
}

func (m *MemRepo) ExistsMany(_ context.Context, memberID int64, ids []int64) (map[int64]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[int64]bool{}
	for _, id := range ids {
		for _, r := range m.rows {
			if r.MemberID == memberID && r.MedicineID == id {
				out[id] = true
			}
		}
	}
	return out, nil
}

// FakeTx runs fn inline and counts transactions
type FakeTx struct{ Txs int }

func (f *FakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (f *FakeTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (f *FakeTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (f *FakeTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error {
	f.Txs++
	return fn(f)
}

// Bind returns a binder that always yields m
func Bind(m *MemRepo) repokit.Binder[owned.Repo] {
	return repokit.BindFunc[owned.Repo](func(repokit.Queryer) owned.Repo { return m })
}

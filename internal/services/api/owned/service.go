// Package owned is the shared engine behind per member collections of medicines
//
// Favorites and detection logs have the same shape: rows owned by one member,
// each pointing at a medicine, listed a page at a time, deleted one by one
// after an owner check or all at once in a single statement. The engine is
// bound to one table and to the client error names of that collection
package owned

import (
	"context"
	"errors"

	"pillbox/internal/core/apierr"
	"pillbox/internal/core/paging"
	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"
)

// Names are the client errors a collection reports
type Names struct {
	NotExist     error
	NoPermission error
	// Duplicate is returned on a unique violation; nil when the table allows repeats
	Duplicate error
}

// Page is one window over a member's collection
type Page struct {
	MemberID  int64
	Total     int
	TotalPage int
	Page      int
	LastPage  bool
	Items     []Record
}

// Service runs collection workflows over one table
type Service struct {
	repo     Repo
	binder   repokit.Binder[Repo]
	db       repokit.TxRunner
	names    Names
	pageSize int
}

// New constructs the engine for a table bound by binder
func New(db repokit.TxRunner, binder repokit.Binder[Repo], names Names) *Service {
	if db == nil {
		panic("owned.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("owned.Service requires a non nil Repo binder")
	}
	if names.NotExist == nil || names.NoPermission == nil {
		panic("owned.Service requires NotExist and NoPermission names")
	}
	return &Service{
		repo:     binder.Bind(db),
		binder:   binder,
		db:       db,
		names:    names,
		pageSize: paging.PageSize,
	}
}

// ListPage returns one page of the member's records ordered by creation time
func (s *Service) ListPage(ctx context.Context, memberID int64, page int, dir paging.Direction) (Page, error) {
	total, err := s.repo.Count(ctx, memberID)
	if err != nil {
		return Page{}, perr.FromPostgres(err, "count records")
	}
	w, err := paging.Compute(total, s.pageSize, page)
	if err != nil {
		return Page{}, apierr.FromPaging(err, s.names.NotExist)
	}
	items, err := s.repo.Page(ctx, memberID, dir, w.Limit, w.RowOffset())
	if err != nil {
		return Page{}, perr.FromPostgres(err, "list records")
	}
	return Page{
		MemberID:  memberID,
		Total:     total,
		TotalPage: w.TotalPages,
		Page:      page,
		LastPage:  w.IsLastPage,
		Items:     items,
	}, nil
}

// Get returns one record after checking it belongs to memberID
func (s *Service) Get(ctx context.Context, id, memberID int64) (Record, error) {
	return s.owned(ctx, s.repo, id, memberID)
}

// Delete removes one record after the owner check; the delete is permanent
func (s *Service) Delete(ctx context.Context, id, memberID int64) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if _, err := s.owned(ctx, r, id, memberID); err != nil {
			return err
		}
		if err := r.Delete(ctx, id); err != nil {
			if errors.Is(err, perr.ErrNotFound) {
				return s.names.NotExist
			}
			return perr.FromPostgres(err, "delete record")
		}
		return nil
	})
}

// DeleteAll removes every record of memberID in one set based statement
// the count and the delete share a transaction so the result is all or nothing
func (s *Service) DeleteAll(ctx context.Context, memberID int64) error {
	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		n, err := r.Count(ctx, memberID)
		if err != nil {
			return perr.FromPostgres(err, "count records")
		}
		if n == 0 {
			return s.names.NotExist
		}
		if _, err := r.DeleteAll(ctx, memberID); err != nil {
			return perr.FromPostgres(err, "delete records")
		}
		return nil
	})
}

// Create links memberID to medicineID and returns the new record id
// uniqueness, where the table has it, is left to the unique index
func (s *Service) Create(ctx context.Context, memberID, medicineID int64) (int64, error) {
	id, err := s.repo.Insert(ctx, memberID, medicineID)
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, apierr.ErrMedicineNotExist):
		return 0, err
	case s.names.Duplicate != nil && perr.IsDuplicateKey(err):
		return 0, perr.WithCause(s.names.Duplicate, err)
	case perr.IsForeignKeyViolation(err):
		// the medicine vanished between the select and the insert
		return 0, perr.WithCause(apierr.ErrMedicineNotExist, err)
	default:
		return 0, perr.FromPostgresWithField(err, "insert record")
	}
}

// Count returns how many records memberID owns
func (s *Service) Count(ctx context.Context, memberID int64) (int, error) {
	n, err := s.repo.Count(ctx, memberID)
	if err != nil {
		return 0, perr.FromPostgres(err, "count records")
	}
	return n, nil
}

// Exists reports whether memberID has a record for medicineID
func (s *Service) Exists(ctx context.Context, memberID, medicineID int64) (bool, error) {
	m, err := s.ExistsMany(ctx, memberID, []int64{medicineID})
	if err != nil {
		return false, err
	}
	return m[medicineID], nil
}

// ExistsMany answers Exists for a batch of medicines in one query
func (s *Service) ExistsMany(ctx context.Context, memberID int64, medicineIDs []int64) (map[int64]bool, error) {
	m, err := s.repo.ExistsMany(ctx, memberID, medicineIDs)
	if err != nil {
		return nil, perr.FromPostgres(err, "lookup records")
	}
	return m, nil
}

func (s *Service) owned(ctx context.Context, r Repo, id, memberID int64) (Record, error) {
	rec, err := r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return Record{}, s.names.NotExist
		}
		return Record{}, perr.FromPostgres(err, "load record")
	}
	if rec.MemberID != memberID {
		return Record{}, s.names.NoPermission
	}
	return rec, nil
}

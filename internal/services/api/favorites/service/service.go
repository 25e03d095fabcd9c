// Package service contains favorites workflows
package service

import (
	"context"

	"pillbox/internal/core/apierr"
	"pillbox/internal/core/paging"
	"pillbox/internal/modkit/repokit"
	"pillbox/internal/services/api/favorites/domain"
	"pillbox/internal/services/api/owned"
)

// Table is the postgres table holding favorites
const Table = "favorites"

// Names are the client errors favorites report
var Names = owned.Names{
	NotExist:     apierr.ErrFavoriteNotExist,
	NoPermission: apierr.ErrFavoriteNoPermission,
	Duplicate:    apierr.ErrFavoriteAlreadyExist,
}

// Service defines the service contract for favorites
type Service interface {
	domain.ServicePort
	domain.LookupPort
}

// Svc implements the Service interface
type Svc struct {
	col *owned.Service
}

// New creates a new favorites service
func New(db repokit.TxRunner, binder repokit.Binder[owned.Repo]) *Svc {
	if db == nil {
		panic("favorites.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("favorites.Service requires a non nil Repo binder")
	}
	return &Svc{col: owned.New(db, binder, Names)}
}

// List returns one page of the member's favorites
func (s *Svc) List(ctx context.Context, memberID int64, q domain.ListQuery) (domain.FavoritePageRes, error) {
	pg, err := s.col.ListPage(ctx, memberID, q.Page, paging.ParseDirection(q.Sort))
	if err != nil {
		return domain.FavoritePageRes{}, err
	}
	items := make([]domain.FavoriteRes, 0, len(pg.Items))
	for _, r := range pg.Items {
		items = append(items, toRes(r))
	}
	return domain.FavoritePageRes{
		MemberID:  pg.MemberID,
		Total:     pg.Total,
		TotalPage: pg.TotalPage,
		Page:      pg.Page,
		LastPage:  pg.LastPage,
		Items:     items,
	}, nil
}

// Get returns one favorite owned by memberID
func (s *Svc) Get(ctx context.Context, id, memberID int64) (domain.FavoriteRes, error) {
	r, err := s.col.Get(ctx, id, memberID)
	if err != nil {
		return domain.FavoriteRes{}, err
	}
	return toRes(r), nil
}

// Create saves medicineID as a favorite of memberID
func (s *Svc) Create(ctx context.Context, memberID, medicineID int64) (int64, error) {
	return s.col.Create(ctx, memberID, medicineID)
}

// Delete removes one favorite after the owner check
func (s *Svc) Delete(ctx context.Context, id, memberID int64) error {
	return s.col.Delete(ctx, id, memberID)
}

// DeleteAll removes every favorite of memberID
func (s *Svc) DeleteAll(ctx context.Context, memberID int64) error {
	return s.col.DeleteAll(ctx, memberID)
}

// Count returns the number of favorites of memberID
func (s *Svc) Count(ctx context.Context, memberID int64) (int, error) {
	return s.col.Count(ctx, memberID)
}

// ExistsMany reports which of medicineIDs memberID has favorited
func (s *Svc) ExistsMany(ctx context.Context, memberID int64, medicineIDs []int64) (map[int64]bool, error) {
	return s.col.ExistsMany(ctx, memberID, medicineIDs)
}

func toRes(r owned.Record) domain.FavoriteRes {
	return domain.FavoriteRes{
		ID:              r.ID,
		MedicineID:      r.MedicineID,
		MedicineName:    r.MedicineName,
		MedicineCompany: r.MedicineCompany,
		MedicineImage:   r.MedicineImage,
		IsFavorite:      true,
		CreatedAt:       r.CreatedAt,
	}
}

// Package service contains detection log workflows
package service

import (
	"context"

	"pillbox/internal/core/apierr"
	"pillbox/internal/core/paging"
	"pillbox/internal/modkit/repokit"
	"pillbox/internal/services/api/detectionlogs/domain"
	"pillbox/internal/services/api/owned"
)

// Table is the postgres table holding detection logs
const Table = "detection_logs"

// Names are the client errors detection logs report; repeats are allowed
var Names = owned.Names{
	NotExist:     apierr.ErrDetectionLogNotExist,
	NoPermission: apierr.ErrDetectionLogNoPermission,
}

// Service defines the service contract for detection logs
type Service interface {
	domain.ServicePort
	domain.RecorderPort
}

// Svc implements the Service interface
type Svc struct {
	col *owned.Service
}

// New creates a new detection log service
func New(db repokit.TxRunner, binder repokit.Binder[owned.Repo]) *Svc {
	if db == nil {
		panic("detectionlogs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("detectionlogs.Service requires a non nil Repo binder")
	}
	return &Svc{col: owned.New(db, binder, Names)}
}

// List returns one page of the member's detection history
func (s *Svc) List(ctx context.Context, memberID int64, q domain.ListQuery) (domain.DetectionLogPageRes, error) {
	pg, err := s.col.ListPage(ctx, memberID, q.Page, paging.ParseDirection(q.Sort))
	if err != nil {
		return domain.DetectionLogPageRes{}, err
	}
	items := make([]domain.DetectionLogRes, 0, len(pg.Items))
	for _, r := range pg.Items {
		items = append(items, domain.DetectionLogRes{
			ID:              r.ID,
			MedicineID:      r.MedicineID,
			MedicineName:    r.MedicineName,
			MedicineCompany: r.MedicineCompany,
			MedicineImage:   r.MedicineImage,
			CreatedAt:       r.CreatedAt,
		})
	}
	return domain.DetectionLogPageRes{
		MemberID:  pg.MemberID,
		Total:     pg.Total,
		TotalPage: pg.TotalPage,
		Page:      pg.Page,
		LastPage:  pg.LastPage,
		Items:     items,
	}, nil
}

// Create appends a detection of medicineID to the member's history
func (s *Svc) Create(ctx context.Context, memberID, medicineID int64) (int64, error) {
	return s.col.Create(ctx, memberID, medicineID)
}

// Delete removes one detection log after the owner check
func (s *Svc) Delete(ctx context.Context, id, memberID int64) error {
	return s.col.Delete(ctx, id, memberID)
}

// DeleteAll clears the member's detection history
func (s *Svc) DeleteAll(ctx context.Context, memberID int64) error {
	return s.col.DeleteAll(ctx, memberID)
}

// Count returns the size of the member's detection history
func (s *Svc) Count(ctx context.Context, memberID int64) (int, error) {
	return s.col.Count(ctx, memberID)
}

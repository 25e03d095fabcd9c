// Package service runs a photo through the detector and records the hit
package service

import (
	"context"

	"pillbox/internal/adapters/detector"
	"pillbox/internal/core/apierr"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	"pillbox/internal/services/api/detection/domain"
	meddom "pillbox/internal/services/api/medicines/domain"
)

// DefaultMinScore is the lowest confidence, in percent, that counts as a detection
const DefaultMinScore = 70

// Service defines the service contract for detection
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	det      detector.Detector
	catalog  domain.CatalogPort
	history  domain.HistoryPort
	minScore float64
}

// New creates a detection service; minScore <= 0 uses DefaultMinScore
func New(det detector.Detector, catalog domain.CatalogPort, history domain.HistoryPort, minScore int) *Svc {
	if det == nil {
		panic("detection.Service requires a non nil Detector")
	}
	if catalog == nil {
		panic("detection.Service requires a non nil catalog port")
	}
	if history == nil {
		panic("detection.Service requires a non nil history port")
	}
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	return &Svc{det: det, catalog: catalog, history: history, minScore: float64(minScore)}
}

// Detect identifies the medicine in img, returns its detail view and appends it to the member's detection log
func (s *Svc) Detect(ctx context.Context, memberID int64, img detector.Image) (meddom.MedicineRes, error) {
	if len(img.Data) == 0 {
		return meddom.MedicineRes{}, perr.WithField(perr.Validationf("image is required"), "image")
	}
	res, err := s.det.Detect(ctx, img)
	if err != nil {
		return meddom.MedicineRes{}, err
	}
	if res.Score*100 < s.minScore || res.ID <= 0 {
		logger.C(ctx).Info().Int64("medicine_id", res.ID).Float64("score", res.Score).Msg("detection below threshold")
		return meddom.MedicineRes{}, apierr.ErrMedicineNotDetect
	}

	med, err := s.catalog.GetByID(ctx, memberID, res.ID)
	if err != nil {
		return meddom.MedicineRes{}, err
	}
	if _, err := s.history.Create(ctx, memberID, med.ID); err != nil {
		return meddom.MedicineRes{}, err
	}
	return med, nil
}

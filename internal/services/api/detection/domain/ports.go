// Package domain holds the detection ports
package domain

import (
	"context"

	"pillbox/internal/adapters/detector"
	meddom "pillbox/internal/services/api/medicines/domain"
)

// ServicePort defines the service contract for detection
type ServicePort interface {
	Detect(ctx context.Context, memberID int64, img detector.Image) (meddom.MedicineRes, error)
}

// CatalogPort loads the detail view of a detected medicine
type CatalogPort interface {
	GetByID(ctx context.Context, memberID, id int64) (meddom.MedicineRes, error)
}

// HistoryPort records a detection for the member
type HistoryPort interface {
	Create(ctx context.Context, memberID, medicineID int64) (int64, error)
}

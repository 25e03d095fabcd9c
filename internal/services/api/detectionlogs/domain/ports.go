package domain

import "context"

// ServicePort defines the service contract for detection logs
type ServicePort interface {
	List(ctx context.Context, memberID int64, q ListQuery) (DetectionLogPageRes, error)
	Create(ctx context.Context, memberID, medicineID int64) (int64, error)
	Delete(ctx context.Context, id, memberID int64) error
	DeleteAll(ctx context.Context, memberID int64) error
}

// RecorderPort is used by detection to append to the history and by my-page to count it
type RecorderPort interface {
	Create(ctx context.Context, memberID, medicineID int64) (int64, error)
	Count(ctx context.Context, memberID int64) (int, error)
}

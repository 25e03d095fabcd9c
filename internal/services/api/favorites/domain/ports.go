package domain

import "context"

// ServicePort defines the service contract for favorites
type ServicePort interface {
	List(ctx context.Context, memberID int64, q ListQuery) (FavoritePageRes, error)
	Get(ctx context.Context, id, memberID int64) (FavoriteRes, error)
	Create(ctx context.Context, memberID, medicineID int64) (int64, error)
	Delete(ctx context.Context, id, memberID int64) error
	DeleteAll(ctx context.Context, memberID int64) error
}

// LookupPort is what other modules may ask about a member's favorites
type LookupPort interface {
	Count(ctx context.Context, memberID int64) (int, error)
	ExistsMany(ctx context.Context, memberID int64, medicineIDs []int64) (map[int64]bool, error)
}

package domain

import "context"

// ServicePort defines the service contract for medicines
type ServicePort interface {
	GetByID(ctx context.Context, memberID, id int64) (MedicineRes, error)
	GetByCode(ctx context.Context, memberID int64, code string) (MedicineRes, error)
	SearchPage(ctx context.Context, memberID int64, term string, page int) (SearchPageRes, error)
	SearchFirstPageAndLog(ctx context.Context, memberID int64, term string) (SearchPageRes, error)
	Suggest(ctx context.Context, term string) ([]string, error)
}

// DetailPort is what detection asks of the catalog
type DetailPort interface {
	GetByID(ctx context.Context, memberID, id int64) (MedicineRes, error)
}

// FavoritePort answers which medicines a member has favorited
type FavoritePort interface {
	ExistsMany(ctx context.Context, memberID int64, medicineIDs []int64) (map[int64]bool, error)
}

// SearchLogPort records a member's search term
type SearchLogPort interface {
	Append(ctx context.Context, memberID int64, term string) error
}

// LabelPort loads package insert text for a medicine code
type LabelPort interface {
	Labels(ctx context.Context, code string) Labels
}

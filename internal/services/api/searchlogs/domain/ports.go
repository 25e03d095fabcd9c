package domain

import "context"

// ServicePort defines the service contract for recent search logs
type ServicePort interface {
	List(ctx context.Context, memberID int64) ([]SearchLog, error)
	RemoveOne(ctx context.Context, memberID int64, entry SearchLog) error
	Clear(ctx context.Context, memberID int64) error
}

// AppendPort is used by medicine search to record a first page query
type AppendPort interface {
	Append(ctx context.Context, memberID int64, term string) error
}

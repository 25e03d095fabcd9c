package domain

import "context"

// ServicePort defines the service contract for members
type ServicePort interface {
	Me(ctx context.Context, memberID int64) (MemberRes, error)
	MyPage(ctx context.Context, memberID int64) (MyPageRes, error)
	Upsert(ctx context.Context, in UpsertInput) (int64, error)
}

// ResolverPort turns a token's member id into a live member
type ResolverPort interface {
	Resolve(ctx context.Context, memberID int64) (Member, error)
}

// CountPort counts one of a member's collections
type CountPort interface {
	Count(ctx context.Context, memberID int64) (int, error)
}

// Package service contains the member profile workflows
package service

import (
	"context"
	"errors"
	"strings"

	"pillbox/internal/core/apierr"
	"pillbox/internal/modkit/repokit"
	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/net/http/bind"
	"pillbox/internal/services/api/members/domain"
	"pillbox/internal/services/api/members/repo"
)

// Service defines the service contract for members
type Service interface {
	domain.ServicePort
	domain.ResolverPort
}

// Counters are the collection counts shown on the my page view; nil counts as zero
type Counters struct {
	Favorites     domain.CountPort
	DetectionLogs domain.CountPort
}

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
	cnt  Counters
}

// New creates a new members service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], cnt Counters) *Svc {
	if db == nil {
		panic("members.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("members.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), cnt: cnt}
}

// Resolve returns the live member for memberID
func (s *Svc) Resolve(ctx context.Context, memberID int64) (domain.Member, error) {
	if memberID <= 0 {
		return domain.Member{}, apierr.ErrMemberNotExist
	}
	m, err := s.Repo.ByID(ctx, memberID)
	if errors.Is(err, perr.ErrNotFound) {
		return domain.Member{}, apierr.ErrMemberNotExist
	}
	if err != nil {
		return domain.Member{}, perr.FromPostgres(err, "load member")
	}
	return m, nil
}

// Me returns the caller's profile
func (s *Svc) Me(ctx context.Context, memberID int64) (domain.MemberRes, error) {
	m, err := s.Resolve(ctx, memberID)
	if err != nil {
		return domain.MemberRes{}, err
	}
	return domain.MemberRes{ID: m.ID, Name: m.Name, Email: m.Email, Picture: m.Picture}, nil
}

// MyPage returns the caller's profile with favorite and detection log counts
func (s *Svc) MyPage(ctx context.Context, memberID int64) (domain.MyPageRes, error) {
	m, err := s.Resolve(ctx, memberID)
	if err != nil {
		return domain.MyPageRes{}, err
	}
	favs, err := count(ctx, s.cnt.Favorites, memberID)
	if err != nil {
		return domain.MyPageRes{}, err
	}
	logs, err := count(ctx, s.cnt.DetectionLogs, memberID)
	if err != nil {
		return domain.MyPageRes{}, err
	}
	return domain.MyPageRes{
		Name:              m.Name,
		Email:             m.Email,
		Picture:           m.Picture,
		FavoriteCount:     favs,
		DetectionLogCount: logs,
	}, nil
}

// Upsert creates the member or refreshes its profile, keyed by email
func (s *Svc) Upsert(ctx context.Context, in domain.UpsertInput) (int64, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	in.Picture = strings.TrimSpace(in.Picture)
	if err := bind.Validate(in); err != nil {
		return 0, err
	}
	id, err := s.Repo.Upsert(ctx, in.Email, in.Name, in.Picture)
	if err != nil {
		return 0, perr.FromPostgres(err, "upsert member")
	}
	return id, nil
}

func count(ctx context.Context, p domain.CountPort, memberID int64) (int, error) {
	if p == nil {
		return 0, nil
	}
	return p.Count(ctx, memberID)
}

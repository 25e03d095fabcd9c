package service

import (
	"context"
	"errors"
	"testing"

	"pillbox/internal/core/apierr"
	"pillbox/internal/platform/testkit"
	"pillbox/internal/services/api/favorites/domain"
	"pillbox/internal/services/api/owned/ownedtest"
)

func newTestSvc(medicines ...int64) *Svc {
	return New(&ownedtest.FakeTx{}, ownedtest.Bind(ownedtest.NewMemRepo(true, medicines...)))
}

func TestList_ProjectsFavoriteFlag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestSvc(10, 11)
	for _, med := range []int64{10, 11} {
		if _, err := s.Create(ctx, 1, med); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	pg, err := s.List(ctx, 1, domain.ListQuery{Page: 1, Sort: "asc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if pg.MemberID != 1 || pg.Total != 2 || pg.TotalPage != 1 || !pg.LastPage {
		t.Fatalf("page meta = %+v", pg)
	}
	if len(pg.Items) != 2 || pg.Items[0].MedicineID != 10 || pg.Items[1].MedicineID != 11 {
		t.Fatalf("items = %+v, want oldest first", pg.Items)
	}
	for _, it := range pg.Items {
		if !it.IsFavorite {
			t.Fatalf("item %d not flagged as favorite", it.ID)
		}
	}
}

func TestList_EmptyIsFavoriteNotExist(t *testing.T) {
	t.Parallel()
	_, err := newTestSvc().List(context.Background(), 1, domain.ListQuery{Page: 1})
	if !errors.Is(err, apierr.ErrFavoriteNotExist) {
		t.Fatalf("err = %v, want FAVORITE_NOT_EXIST", err)
	}
}

func TestCreate_DuplicateIsAlreadyExist(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestSvc(7)
	if _, err := s.Create(ctx, 1, 7); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := s.Create(ctx, 1, 7); !errors.Is(err, apierr.ErrFavoriteAlreadyExist) {
		t.Fatalf("second Create err = %v, want FAVORITE_ALREADY_EXIST", err)
	}
	// another member may favorite the same medicine
	if _, err := s.Create(ctx, 2, 7); err != nil {
		t.Fatalf("other member Create: %v", err)
	}
}

func TestGet_OtherMemberIsNoPermission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestSvc(7)
	id, err := s.Create(ctx, 1, 7)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Get(ctx, id, 2); !errors.Is(err, apierr.ErrFavoriteNoPermission) {
		t.Fatalf("err = %v, want FAVORITE_NO_PERMISSION", err)
	}
	got, err := s.Get(ctx, id, 1)
	if err != nil || got.ID != id || !got.IsFavorite {
		t.Fatalf("Get = %+v, %v", got, err)
	}
}

func TestLookup_CountAndExistsMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newTestSvc(1, 2, 3)
	for _, med := range []int64{1, 3} {
		if _, err := s.Create(ctx, 5, med); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	n, err := s.Count(ctx, 5)
	if err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}
	m, err := s.ExistsMany(ctx, 5, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("ExistsMany: %v", err)
	}
	if !m[1] || m[2] || !m[3] {
		t.Fatalf("ExistsMany = %v", m)
	}
}

func TestNew_PanicsOnNil(t *testing.T) {
	t.Parallel()
	testkit.MustPanic(t, func() { New(nil, ownedtest.Bind(ownedtest.NewMemRepo(true))) })
	testkit.MustPanic(t, func() { New(&ownedtest.FakeTx{}, nil) })
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pillbox/internal/adapters/identity"
	"pillbox/internal/core/apierr"
	"pillbox/internal/modkit/httpkit"
	perr "pillbox/internal/platform/errors"
	memdom "pillbox/internal/services/api/members/domain"
)

type members map[int64]memdom.Member

func (m members) Resolve(_ context.Context, id int64) (memdom.Member, error) {
	if v, ok := m[id]; ok {
		return v, nil
	}
	return memdom.Member{}, apierr.ErrMemberNotExist
}

func manager(t *testing.T) *identity.Manager {
	t.Helper()
	m, err := identity.New(identity.Options{Secret: "0123456789abcdef0123456789abcdef", TTL: time.Hour})
	if err != nil {
		t.Fatalf("identity.New: %v", err)
	}
	return m
}

func TestTokenFunc_ResolvesMember(t *testing.T) {
	t.Parallel()
	tm := manager(t)
	fn := TokenFunc(tm, members{7: {ID: 7, Email: "db@example.com"}})

	raw, _, _ := tm.Issue(7, "token@example.com")
	uid, email, err := fn(context.Background(), raw)
	if err != nil {
		t.Fatalf("TokenFunc: %v", err)
	}
	if uid != "7" || email != "db@example.com" {
		t.Fatalf("uid=%q email=%q", uid, email)
	}
}

func TestTokenFunc_DeletedMember(t *testing.T) {
	t.Parallel()
	tm := manager(t)
	raw, _, _ := tm.Issue(8, "")

	port := httpkit.NewPortFunc(TokenFunc(tm, members{}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	if _, _, err := port.Parse(req); !errors.Is(err, apierr.ErrMemberNotExist) {
		t.Fatalf("err = %v, want MEMBER_NOT_EXIST", err)
	}
}

func TestTokenFunc_BadTokenIsUnauthorized(t *testing.T) {
	t.Parallel()
	port := httpkit.NewPortFunc(TokenFunc(manager(t), members{}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	if _, _, err := port.Parse(req); perr.HTTPStatus(err) != http.StatusUnauthorized {
		t.Fatalf("err = %v", err)
	}
}

func TestTokenFunc_Unconfigured(t *testing.T) {
	t.Parallel()
	if _, _, err := TokenFunc(nil, nil)(context.Background(), "x"); perr.HTTPStatus(err) != http.StatusUnauthorized {
		t.Fatalf("err = %v", err)
	}
}

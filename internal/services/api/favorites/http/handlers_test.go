package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pillbox/internal/core/apierr"
	"pillbox/internal/modkit/httpkit"
	pnet "pillbox/internal/platform/net"
	phttp "pillbox/internal/platform/net/http"
	"pillbox/internal/platform/testkit"
	"pillbox/internal/services/api/favorites/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	lastQuery  domain.ListQuery
	lastMember int64
	deletedID  int64
	createErr  error
}

func (f *fakeSvc) List(_ context.Context, memberID int64, q domain.ListQuery) (domain.FavoritePageRes, error) {
	f.lastMember, f.lastQuery = memberID, q
	return domain.FavoritePageRes{MemberID: memberID, Total: 1, TotalPage: 1, Page: q.Page, LastPage: true}, nil
}

func (f *fakeSvc) Get(_ context.Context, id, _ int64) (domain.FavoriteRes, error) {
	return domain.FavoriteRes{ID: id, IsFavorite: true}, nil
}

func (f *fakeSvc) Create(_ context.Context, memberID, _ int64) (int64, error) {
	f.lastMember = memberID
	return 1, f.createErr
}

func (f *fakeSvc) Delete(_ context.Context, id, _ int64) error {
	f.deletedID = id
	return nil
}

func (f *fakeSvc) DeleteAll(context.Context, int64) error { return apierr.ErrFavoriteNotExist }

func (f *fakeSvc) Count(context.Context, int64) (int, error) { return 0, nil }

func (f *fakeSvc) ExistsMany(context.Context, int64, []int64) (map[int64]bool, error) {
	return map[int64]bool{}, nil
}

func newRouter(s *fakeSvc) http.Handler {
	mux := chi.NewRouter()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), "42", "m@example.com")))
		})
	})
	r := phttp.AdaptChi(mux)
	r.Route("/favorites", func(rr httpkit.Router) { Register(rr, s) })
	return mux
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestList_BindsQueryAndMember(t *testing.T) {
	t.Parallel()
	s := &fakeSvc{}
	rr := do(newRouter(s), http.MethodGet, "/favorites?page=2&sort=asc", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	if s.lastMember != 42 || s.lastQuery.Page != 2 || s.lastQuery.Sort != "asc" {
		t.Fatalf("service saw member=%d query=%+v", s.lastMember, s.lastQuery)
	}
	testkit.MustContain(t, rr.Body.String(), `"memberId":42`)
}

func TestList_DefaultsPage(t *testing.T) {
	t.Parallel()
	s := &fakeSvc{}
	do(newRouter(s), http.MethodGet, "/favorites", "")
	if s.lastQuery.Page != 1 || s.lastQuery.Sort != "desc" {
		t.Fatalf("defaults not applied: %+v", s.lastQuery)
	}
}

func TestCreate_AnswersCreatedAck(t *testing.T) {
	t.Parallel()
	rr := do(newRouter(&fakeSvc{}), http.MethodPost, "/favorites", `{"medicineId":7}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	testkit.MustContain(t, rr.Body.String(), "SAVE_FAVORITE_SUCCESS")
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	t.Parallel()
	rr := do(newRouter(&fakeSvc{createErr: apierr.ErrFavoriteAlreadyExist}), http.MethodPost, "/favorites", `{"medicineId":7}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), "FAVORITE_ALREADY_EXIST")
}

func TestCreate_MissingMedicineIDIsValidation(t *testing.T) {
	t.Parallel()
	rr := do(newRouter(&fakeSvc{}), http.MethodPost, "/favorites", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestDelete_ParsesPathID(t *testing.T) {
	t.Parallel()
	s := &fakeSvc{}
	rr := do(newRouter(s), http.MethodDelete, "/favorites/9", "")
	if rr.Code != http.StatusOK || s.deletedID != 9 {
		t.Fatalf("status = %d deleted=%d", rr.Code, s.deletedID)
	}
	testkit.MustContain(t, rr.Body.String(), "DELETE_FAVORITE_SUCCESS")

	if rr := do(newRouter(s), http.MethodDelete, "/favorites/abc", ""); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", rr.Code)
	}
}

func TestDeleteAll_EmptyIsNotFound(t *testing.T) {
	t.Parallel()
	rr := do(newRouter(&fakeSvc{}), http.MethodDelete, "/favorites", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), "FAVORITE_NOT_EXIST")
}

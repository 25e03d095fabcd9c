package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pillbox/internal/core/apierr"
	"pillbox/internal/modkit/httpkit"
	pnet "pillbox/internal/platform/net"
	phttp "pillbox/internal/platform/net/http"
	"pillbox/internal/platform/testkit"
	"pillbox/internal/services/api/medicines/domain"

	"github.com/go-chi/chi/v5"
)

type fakeSvc struct {
	logged   int
	paged    int
	lastPage int
	lastCode string
}

func (f *fakeSvc) GetByID(_ context.Context, _, id int64) (domain.MedicineRes, error) {
	if id == 404 {
		return domain.MedicineRes{}, apierr.ErrMedicineNotExist
	}
	return domain.MedicineRes{ID: id, Name: "타이레놀"}, nil
}

func (f *fakeSvc) GetByCode(_ context.Context, _ int64, code string) (domain.MedicineRes, error) {
	f.lastCode = code
	return domain.MedicineRes{Code: code}, nil
}

func (f *fakeSvc) SearchPage(_ context.Context, _ int64, _ string, page int) (domain.SearchPageRes, error) {
	f.paged++
	f.lastPage = page
	return domain.SearchPageRes{Page: page}, nil
}

func (f *fakeSvc) SearchFirstPageAndLog(_ context.Context, _ int64, term string) (domain.SearchPageRes, error) {
	if term == "" {
		return domain.SearchPageRes{}, apierr.ErrKeywordNotExist
	}
	f.logged++
	return domain.SearchPageRes{Page: 1}, nil
}

func (f *fakeSvc) Suggest(context.Context, string) ([]string, error) {
	return []string{"타이레놀", "타이레놀정"}, nil
}

func newRouter(s *fakeSvc) http.Handler {
	mux := chi.NewRouter()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), "7", "m@example.com")))
		})
	})
	r := phttp.AdaptChi(mux)
	r.Route("/medicines", func(rr httpkit.Router) { Register(rr, s) })
	return mux
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestSearch_FirstPageIsLogged(t *testing.T) {
	t.Parallel()
	s := &fakeSvc{}
	h := newRouter(s)

	if rr := get(h, "/medicines/search?keyword=%ED%83%80%EC%9D%B4"); rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	if rr := get(h, "/medicines/search?keyword=x&page=3"); rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	if s.logged != 1 || s.paged != 1 || s.lastPage != 3 {
		t.Fatalf("logged=%d paged=%d lastPage=%d", s.logged, s.paged, s.lastPage)
	}
}

func TestSearch_MissingKeyword(t *testing.T) {
	t.Parallel()
	rr := get(newRouter(&fakeSvc{}), "/medicines/search")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), "KEYWORD_NOT_EXIST")
}

func TestByID_Paths(t *testing.T) {
	t.Parallel()
	h := newRouter(&fakeSvc{})

	rr := get(h, "/medicines/id/12")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), `"id":12`)

	if rr := get(h, "/medicines/id/404"); rr.Code != http.StatusNotFound {
		t.Fatalf("missing medicine status = %d", rr.Code)
	}
	if rr := get(h, "/medicines/id/abc"); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d", rr.Code)
	}
}

func TestByCode_PassesCode(t *testing.T) {
	t.Parallel()
	s := &fakeSvc{}
	if rr := get(newRouter(s), "/medicines/code/K-123"); rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if s.lastCode != "K-123" {
		t.Fatalf("code = %q", s.lastCode)
	}
}

func TestRelated_ReturnsNames(t *testing.T) {
	t.Parallel()
	rr := get(newRouter(&fakeSvc{}), "/medicines/search/related?name=%ED%83%80%EC%9D%B4")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), "타이레놀정")
}

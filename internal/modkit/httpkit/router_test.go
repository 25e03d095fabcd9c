package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "pillbox/internal/platform/net/http"
)

type registration struct {
	verb string
	path string
	h    phttp.Handler
}

// recRouter records registrations and flattens Route and Group into itself
type recRouter struct {
	prefixes []string
	mws      [][]func(http.Handler) http.Handler
	groups   int
	regs     []registration
}

func (f *recRouter) add(verb, path string, h phttp.Handler) {
	f.regs = append(f.regs, registration{verb, path, h})
}

func (f *recRouter) Get(p string, h phttp.Handler)    { f.add("GET", p, h) }
func (f *recRouter) Post(p string, h phttp.Handler)   { f.add("POST", p, h) }
func (f *recRouter) Delete(p string, h phttp.Handler) { f.add("DELETE", p, h) }
func (f *recRouter) Handle(p string, h http.Handler)  { f.add("HANDLE", p, h.ServeHTTP) }
func (f *recRouter) Mux() http.Handler                { return http.NotFoundHandler() }
func (f *recRouter) Group(fn func(Router))            { f.groups++; fn(f) }

func (f *recRouter) Use(mw ...func(http.Handler) http.Handler) { f.mws = append(f.mws, mw) }

func (f *recRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

// only returns the single registered handler after checking its verb and path
func (f *recRouter) only(t *testing.T, verb, path string) phttp.Handler {
	t.Helper()
	if len(f.regs) != 1 {
		t.Fatalf("expected 1 registration, got %d", len(f.regs))
	}
	rec := f.regs[0]
	if rec.verb != verb || rec.path != path || rec.h == nil {
		t.Fatalf("registration = %s %s (nil handler %v), want %s %s", rec.verb, rec.path, rec.h == nil, verb, path)
	}
	return rec.h
}

func serve(h phttp.Handler, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/x", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

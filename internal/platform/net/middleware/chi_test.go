package middleware_test

import (
	"compress/flate"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	pnet "pillbox/internal/platform/net"
	"pillbox/internal/platform/net/middleware"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestCompress_Negotiates(t *testing.T) {
	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, strings.Repeat(`{"itemName":"타이레놀"}`, 200))
	}))

	for enc, want := range map[string]string{"gzip": "gzip", "": ""} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if enc != "" {
			req.Header.Set("Accept-Encoding", enc)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if got := rr.Header().Get("Content-Encoding"); got != want {
			t.Fatalf("Accept-Encoding %q: Content-Encoding = %q, want %q", enc, got, want)
		}
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name      string
		origins   []string
		origin    string
		wantAllow string
	}{
		{name: "listed origin", origins: []string{"https://pillbox.example"}, origin: "https://pillbox.example", wantAllow: "https://pillbox.example"},
		{name: "unlisted origin", origins: []string{"https://pillbox.example"}, origin: "https://evil.example", wantAllow: ""},
		{name: "no list allows any", origin: "https://anywhere.example", wantAllow: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: tt.origins})(http.HandlerFunc(ok))

			req := httptest.NewRequest(http.MethodOptions, "/api/v1/favorites", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
			req.Header.Set("Access-Control-Request-Headers", "Authorization")
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Fatalf("allow origin = %q, want %q", got, tt.wantAllow)
			}
			if tt.wantAllow != "" && rr.Header().Get("Access-Control-Allow-Methods") == "" {
				t.Fatalf("preflight without allow methods: %v", rr.Header())
			}
		})
	}
}

func TestAllowContentType_Upload(t *testing.T) {
	h := middleware.AllowContentType("multipart/form-data")(http.HandlerFunc(ok))

	for ct, want := range map[string]int{
		"application/json":               http.StatusUnsupportedMediaType,
		"multipart/form-data; boundary=b": http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/detection", strings.NewReader("--b--"))
		req.Header.Set("Content-Type", ct)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != want {
			t.Fatalf("%s: status = %d, want %d", ct, rr.Code, want)
		}
	}
}

func TestThrottle_RejectsOverLimit(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	h := middleware.Throttle(1)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		entered <- struct{}{}
		<-release
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	wg.Go(func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	})
	<-entered

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	close(release)
	wg.Wait()

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rr.Code)
	}
}

func TestStripSlashes(t *testing.T) {
	h := middleware.StripSlashes()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.URL.Path)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/members/me/", nil))
	if rr.Body.String() != "/members/me" {
		t.Fatalf("path = %q", rr.Body.String())
	}
}

func TestRequestID_PropagatesInbound(t *testing.T) {
	var seen string
	h := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-in")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "rid-in" {
		t.Fatalf("request id = %q", seen)
	}
}

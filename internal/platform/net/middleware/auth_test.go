package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	pnet "pillbox/internal/platform/net"
	"pillbox/internal/platform/net/middleware"
)

type portFunc func(*http.Request) (string, string, error)

func (f portFunc) Parse(r *http.Request) (string, string, error) { return f(r) }

func jsonReply(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuth(t *testing.T) {
	gone := perr.Named(perr.ErrorCodeNotFound, "MEMBER_NOT_EXIST", "member does not exist")

	tests := []struct {
		name     string
		port     middleware.AuthPort
		wantCode int
		wantName string
		wantUser string
	}{
		{name: "nil port is open", port: nil, wantCode: http.StatusOK},
		{
			name:     "resolved member",
			port:     portFunc(func(*http.Request) (string, string, error) { return "42", "kim@example.com", nil }),
			wantCode: http.StatusOK,
			wantUser: "42",
		},
		{
			name:     "bad token",
			port:     portFunc(func(*http.Request) (string, string, error) { return "", "", perr.Unauthorizedf("invalid bearer token") }),
			wantCode: http.StatusUnauthorized,
			wantName: "UNAUTHORIZED",
		},
		{
			name:     "member deleted",
			port:     portFunc(func(*http.Request) (string, string, error) { return "", "", gone }),
			wantCode: http.StatusNotFound,
			wantName: "MEMBER_NOT_EXIST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = pnet.UserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			middleware.Auth(tt.port, jsonReply)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/members/me", nil))

			if rr.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantCode)
			}
			if seen != tt.wantUser {
				t.Fatalf("member on context = %q, want %q", seen, tt.wantUser)
			}
			if tt.wantName == "" {
				return
			}
			var env pnet.Envelope
			if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Error == nil || env.Error.Name != tt.wantName {
				t.Fatalf("error = %+v, want name %s", env.Error, tt.wantName)
			}
		})
	}
}

func TestAuth_CarriesEmailAndLoggerFields(t *testing.T) {
	port := portFunc(func(*http.Request) (string, string, error) { return "7", "lee@example.com", nil })

	var email string
	var log *logger.Logger
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		email = pnet.Email(r.Context())
		log = logger.C(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-7"))
	middleware.Auth(port, jsonReply)(next).ServeHTTP(httptest.NewRecorder(), req)

	if email != "lee@example.com" {
		t.Fatalf("email = %q", email)
	}
	if log == nil {
		t.Fatal("no context logger")
	}
}

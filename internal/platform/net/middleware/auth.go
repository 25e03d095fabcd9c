package middleware

import (
	"net/http"

	"pillbox/internal/platform/logger"
	pnet "pillbox/internal/platform/net"
)

// AuthPort resolves the calling member from a request
type AuthPort interface {
	Parse(r *http.Request) (memberID, email string, err error)
}

// Responder writes status and body, phttp.JSON in production
type Responder func(w http.ResponseWriter, status int, body any)

// Auth puts the resolved member on the context and its id on the context logger
// a nil port disables auth; a failed parse answers with the error envelope
func Auth(p AuthPort, reply Responder) Middleware {
	return func(next http.Handler) http.Handler {
		if p == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			rid := pnet.RequestID(ctx)
			id, email, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Failure(err, rid)
				reply(w, status, body)
				return
			}
			ctx = logger.WithRequest(pnet.WithUser(ctx, id, email), rid, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

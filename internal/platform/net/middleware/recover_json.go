package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	perr "pillbox/internal/platform/errors"
	"pillbox/internal/platform/logger"
	pnet "pillbox/internal/platform/net"
)

var errPanic = perr.Named(perr.ErrorCodePanic, "INTERNAL_ERROR", "internal server error")

// RecoverJSON turns a handler panic into the 500 error envelope and logs the stack
// http.ErrAbortHandler is re-panicked so net/http can drop the connection quietly
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			rid := pnet.RequestID(r.Context())
			logger.C(logger.WithRequest(r.Context(), rid, pnet.UserID(r.Context()))).Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			if rid != "" {
				w.Header().Set("X-Request-ID", rid)
			}
			status, body := pnet.Failure(errPanic, rid)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(body)
		}()
		next.ServeHTTP(w, r)
	})
}

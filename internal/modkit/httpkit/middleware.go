package httpkit

import (
	"compress/flate"
	"time"

	phttp "pillbox/internal/platform/net/http"
	"pillbox/internal/platform/net/middleware"
)

// Request budget and slow request threshold for the versioned API
const (
	RequestTimeout = 30 * time.Second
	SlowRequest    = 500 * time.Millisecond
)

// CommonStack is the middleware chain in front of every versioned route,
// outermost first; origins feed the CORS allow list and none means any origin
func CommonStack(origins ...string) []middleware.Middleware {
	return []middleware.Middleware{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.AccessLog(middleware.AccessLogOptions{Slow: SlowRequest}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins}),
		middleware.NoCache(),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(RequestTimeout),
	}
}

// Auth is middleware.Auth answering with the JSON envelope
func Auth(p middleware.AuthPort) middleware.Middleware {
	return middleware.Auth(p, phttp.JSON)
}

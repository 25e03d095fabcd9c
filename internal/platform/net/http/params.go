package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	perr "pillbox/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// Param returns the trimmed path parameter name from the matched route
func Param(r *stdhttp.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}

// ParamInt64 parses a positive integer path parameter
func ParamInt64(r *stdhttp.Request, name string) (int64, error) {
	raw := Param(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, perr.WithField(perr.Validationf("%s must be a positive integer", name), name)
	}
	return id, nil
}

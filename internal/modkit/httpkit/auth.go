package httpkit

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	perrs "pillbox/internal/platform/errors"
	pnet "pillbox/internal/platform/net"
)

var (
	errNoBearer     = perrs.Unauthorizedf("missing bearer token")
	errBadBearer    = perrs.Unauthorizedf("invalid bearer token")
	errBadPrincipal = perrs.Unauthorizedf("invalid member id")
)

// TokenFunc resolves a bearer token to its member id and email
type TokenFunc func(ctx context.Context, token string) (memberID, email string, err error)

// Port is the middleware.AuthPort for bearer tokens
type Port struct{ resolve TokenFunc }

// NewPortFunc builds a Port around fn
func NewPortFunc(fn TokenFunc) *Port { return &Port{resolve: fn} }

// Parse resolves the request's bearer token
// a token whose member is gone keeps its not found error so clients can tell
// it apart from a bad token; every other failure is 401
func (p *Port) Parse(r *http.Request) (string, string, error) {
	tok, err := bearerToken(r)
	if err != nil {
		return "", "", err
	}
	if p.resolve == nil {
		return "", "", errBadBearer
	}
	id, email, err := p.resolve(r.Context(), tok)
	switch {
	case perrs.IsCode(err, perrs.ErrorCodeNotFound):
		return "", "", err
	case err != nil:
		return "", "", perrs.WithCause(errBadBearer, err)
	case id == "":
		return "", "", errBadBearer
	}
	return id, email, nil
}

// bearerToken reads "Authorization: Bearer <token>", scheme in any case
func bearerToken(r *http.Request) (string, error) {
	scheme, tok, _ := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	tok = strings.TrimSpace(tok)
	if !strings.EqualFold(scheme, "bearer") || tok == "" {
		return "", errNoBearer
	}
	return tok, nil
}

// MemberID is the positive numeric id of the member the auth middleware resolved
func MemberID(r *http.Request) (int64, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return 0, errNoBearer
	}
	id, err := strconv.ParseInt(uid, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadPrincipal
	}
	return id, nil
}

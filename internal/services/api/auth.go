package api

import (
	"context"
	"strconv"

	"pillbox/internal/adapters/identity"
	"pillbox/internal/modkit/httpkit"
	perr "pillbox/internal/platform/errors"
	memdom "pillbox/internal/services/api/members/domain"
)

// TokenFunc verifies a bearer token and resolves its member
// a valid token for a deleted member answers MEMBER_NOT_EXIST rather than 401
func TokenFunc(tokens *identity.Manager, members memdom.ResolverPort) httpkit.TokenFunc {
	return func(ctx context.Context, raw string) (string, string, error) {
		if tokens == nil || members == nil {
			return "", "", perr.Unauthorizedf("authentication is not configured")
		}
		cl, err := tokens.Parse(raw)
		if err != nil {
			return "", "", err
		}
		m, err := members.Resolve(ctx, cl.MemberID)
		if err != nil {
			return "", "", err
		}
		return strconv.FormatInt(m.ID, 10), m.Email, nil
	}
}

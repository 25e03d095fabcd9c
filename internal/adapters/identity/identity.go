// Package identity signs and verifies the bearer tokens members present to the API
//
// Tokens are HS256 JWTs. The member id travels in the uid claim and in sub;
// email is informational only and is re-read from the member store on each request
package identity

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"pillbox/internal/platform/config"
	perr "pillbox/internal/platform/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultIssuer = "pillbox"
	defaultTTL    = 24 * time.Hour

	// minSecret keeps HS256 keys at least as long as the hash output
	minSecret = 32
)

var (
	// ErrInvalidToken is returned for any token that fails verification
	ErrInvalidToken = perr.Named(perr.ErrorCodeUnauthorized, "INVALID_TOKEN", "invalid or expired token")

	// ErrWeakSecret is a configuration error
	ErrWeakSecret = errors.New("identity: jwt secret must be at least 32 bytes")
)

// Options configures a Manager
type Options struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// FromConfig reads CORE_AUTH_JWT_SECRET, CORE_AUTH_JWT_ISSUER and CORE_AUTH_JWT_TTL
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_AUTH_JWT_")
	return Options{
		Secret: c.MustString("SECRET"),
		Issuer: c.MayString("ISSUER", defaultIssuer),
		TTL:    c.MayDuration("TTL", defaultTTL),
	}
}

// Claims is what a verified token says about its bearer
type Claims struct {
	MemberID  int64
	Email     string
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type jwtClaims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and parses member tokens
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// New builds a Manager; a short secret is rejected
func New(o Options) (*Manager, error) {
	if len(o.Secret) < minSecret {
		return nil, ErrWeakSecret
	}
	if o.Issuer == "" {
		o.Issuer = defaultIssuer
	}
	if o.TTL <= 0 {
		o.TTL = defaultTTL
	}
	return &Manager{secret: []byte(o.Secret), issuer: o.Issuer, ttl: o.TTL, now: time.Now}, nil
}

// Issue signs a token for memberID
func (m *Manager) Issue(memberID int64, email string) (string, Claims, error) {
	now := m.now().UTC().Truncate(time.Second)
	jti := uuid.NewString()

	cl := jwtClaims{
		UserID: memberID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(memberID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        jti,
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(m.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return raw, Claims{
		MemberID:  memberID,
		Email:     email,
		JTI:       jti,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}, nil
}

// Parse verifies raw and returns its claims
// signature, algorithm, issuer and expiry are all checked
func (m *Manager) Parse(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Claims{}, ErrInvalidToken
	}
	var out jwtClaims
	tkn, err := jwt.ParseWithClaims(raw, &out, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tkn.Valid {
		return Claims{}, perr.WithCause(ErrInvalidToken, err)
	}
	if out.UserID <= 0 || out.Subject != strconv.FormatInt(out.UserID, 10) {
		return Claims{}, ErrInvalidToken
	}
	return Claims{
		MemberID:  out.UserID,
		Email:     out.Email,
		JTI:       out.ID,
		IssuedAt:  out.IssuedAt.Time,
		ExpiresAt: out.ExpiresAt.Time,
	}, nil
}

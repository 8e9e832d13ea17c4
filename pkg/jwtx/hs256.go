package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret NewHS256 accepts.
const MinSecretLength = 32

// HS256 signs and verifies one kind of token with a shared HMAC-SHA256 secret.
type HS256 struct {
	key    []byte
	kind   string
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// Option tweaks an HS256 at construction.
type Option func(*HS256)

// WithLeeway tolerates clock skew when checking exp and nbf.
func WithLeeway(d time.Duration) Option {
	return func(h *HS256) { h.leeway = d }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(h *HS256) { h.now = now }
}

// NewHS256 returns a signer/verifier for tokens of the given kind.
func NewHS256(secret []byte, kind, issuer string, opts ...Option) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	if kind != KindAccess && kind != KindRefresh {
		return nil, fmt.Errorf("jwtx: unknown token kind %q", kind)
	}

	h := &HS256{
		key:    append([]byte(nil), secret...),
		kind:   kind,
		issuer: issuer,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *HS256) Alg() string  { return jwt.SigningMethodHS256.Alg() }
func (h *HS256) Kind() string { return h.kind }

// Sign stamps the kind and issuer onto claims and signs them.
func (h *HS256) Sign(claims Claims) (string, error) {
	claims.Kind = h.kind
	if claims.Issuer == "" {
		claims.Issuer = h.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.key)
}

// Verify checks signature, kind, issuer, exp and nbf, in that order. Time
// checks are done here rather than by the jwt parser so that callers get
// ErrExpired and ErrNotYetValid as distinct errors.
func (h *HS256) Verify(token string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return h.key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return Claims{}, ErrInvalidSig
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !parsed.Valid {
		return Claims{}, ErrMalformed
	}

	if claims.Kind != h.kind {
		return Claims{}, ErrWrongKind
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrMalformed)
	}
	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiryAt(h.now().UTC(), h.leeway); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

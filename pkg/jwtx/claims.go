package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds, carried in the "typ" claim. Access and refresh tokens are
// signed with different secrets; the claim is a second line of defence for
// deployments that misconfigure both secrets to the same value.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Default lifetimes.
const (
	DefaultAccessTokenTTL  = 24 * time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Membership is a workspace role snapshot embedded in access tokens. It is
// stale the moment it is issued; servers re-resolve roles from the store.
type Membership struct {
	WorkspaceID string `json:"workspace_id"`
	Role        string `json:"role"`
}

// Claims are the token claims shared by access and refresh tokens. Refresh
// tokens only populate the registered claims and Kind.
type Claims struct {
	jwt.RegisteredClaims

	Kind string `json:"typ"`

	// Display name of the subject.
	Name string `json:"name,omitempty"`

	EmailVerified bool `json:"email_verified,omitempty"`

	Memberships []Membership `json:"memberships,omitempty"`
}

// NewClaims builds registered claims for subject valid from now for ttl.
func NewClaims(kind, subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Kind: kind,
	}
}

// NewJTI returns a random identifier for the "jti" claim. Revocation is keyed
// on it.
func NewJTI() string {
	return uuid.NewString()
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiryAt checks exp and nbf against now, allowing leeway of clock
// skew in both directions.
func (c *Claims) ValidateExpiryAt(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// ExpiresAtTime returns the expiry, or the zero time when the claim is absent.
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

package domain

import "time"

// TokenPair is the result of every successful authentication.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult forks on verification: unverified users get a fresh code
// instead of tokens.
type LoginResult struct {
	RequiresVerification bool
	Tokens               TokenPair
}

// MembershipClaim is a (workspace, role) pair embedded in access tokens.
type MembershipClaim struct {
	WorkspaceID string `json:"workspace_id"`
	Role        Role   `json:"role"`
}

// AccessClaims is the identity carried by an access token. The embedded
// memberships reflect issuance time only.
type AccessClaims struct {
	UserID        string
	Name          string
	EmailVerified bool
	Memberships   []MembershipClaim
}

// VerificationToken is an email verification OTP.
type VerificationToken struct {
	ID        string
	UserID    string
	Code      string // upper case
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t VerificationToken) Expired(now time.Time) bool { return now.After(t.ExpiresAt) }

// ResetToken is a password reset request. Only the fingerprint is stored.
type ResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (t ResetToken) Expired(now time.Time) bool { return now.After(t.ExpiresAt) }

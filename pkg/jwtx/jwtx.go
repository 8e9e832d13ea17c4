// Package jwtx signs and verifies the HS256 access and refresh tokens.
package jwtx

import "errors"

// Signer mints tokens. Each signer is bound to one token kind.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier checks signature, kind, issuer and time claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrWrongKind   = errors.New("jwtx: wrong token kind")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrWeakSecret  = errors.New("jwtx: secret must be at least 32 bytes")
)

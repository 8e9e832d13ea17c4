package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/jwtx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

type TokenConfig struct {
	Issuer        string
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	// Leeway tolerates clock skew on exp and nbf.
	Leeway time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// TokenService issues and verifies the two token kinds. Access and refresh
// tokens are signed with independent secrets; refresh tokens can be revoked
// by jti.
type TokenService struct {
	Access      *jwtx.HS256
	Refresh     *jwtx.HS256
	Revocations store.Revocations
	Issuer      string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration

	now func() time.Time
}

func NewTokenService(cfg TokenConfig, revocations store.Revocations) (*TokenService, error) {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = jwtx.DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = jwtx.DefaultRefreshTokenTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	opts := []jwtx.Option{jwtx.WithLeeway(cfg.Leeway), jwtx.WithClock(cfg.Now)}

	access, err := jwtx.NewHS256(cfg.AccessSecret, jwtx.KindAccess, cfg.Issuer, opts...)
	if err != nil {
		return nil, fmt.Errorf("access token secret: %w", err)
	}
	refresh, err := jwtx.NewHS256(cfg.RefreshSecret, jwtx.KindRefresh, cfg.Issuer, opts...)
	if err != nil {
		return nil, fmt.Errorf("refresh token secret: %w", err)
	}

	return &TokenService{
		Access:      access,
		Refresh:     refresh,
		Revocations: revocations,
		Issuer:      cfg.Issuer,
		AccessTTL:   cfg.AccessTTL,
		RefreshTTL:  cfg.RefreshTTL,
		now:         cfg.Now,
	}, nil
}

// IssueAccessToken signs the identity and membership snapshot of a user.
func (s *TokenService) IssueAccessToken(c domain.AccessClaims) (string, error) {
	claims := jwtx.NewClaims(jwtx.KindAccess, c.UserID, s.Issuer, s.AccessTTL, s.now().UTC())
	claims.Name = c.Name
	claims.EmailVerified = c.EmailVerified
	for _, m := range c.Memberships {
		claims.Memberships = append(claims.Memberships, jwtx.Membership{
			WorkspaceID: m.WorkspaceID,
			Role:        string(m.Role),
		})
	}
	return s.Access.Sign(claims)
}

// IssueRefreshToken signs a token carrying only the subject.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	claims := jwtx.NewClaims(jwtx.KindRefresh, userID, s.Issuer, s.RefreshTTL, s.now().UTC())
	return s.Refresh.Sign(claims)
}

// VerifyAccess returns the identity an access token carries.
func (s *TokenService) VerifyAccess(token string) (domain.AccessClaims, error) {
	claims, err := s.Access.Verify(token)
	if err != nil {
		return domain.AccessClaims{}, TokenError(err)
	}
	return accessClaims(claims), nil
}

// VerifyRefresh checks a refresh token and that its jti has not been revoked.
func (s *TokenService) VerifyRefresh(ctx context.Context, token string) (jwtx.Claims, error) {
	claims, err := s.Refresh.Verify(token)
	if err != nil {
		return jwtx.Claims{}, TokenError(err)
	}
	if claims.ID == "" {
		return jwtx.Claims{}, ErrTokenInvalid
	}

	revoked, err := s.Revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		slogx.FromContext(ctx).Info("revoked refresh token presented",
			slog.String("user_id", claims.Subject),
			slog.String("jti", claims.ID),
		)
		return jwtx.Claims{}, ErrTokenRevoked
	}
	return claims, nil
}

// Revoke denylists a verified refresh token until it would have expired
// anyway. It fails with ErrTokenRevoked when another caller revoked the
// same jti first, so a refresh token rotates at most once.
func (s *TokenService) Revoke(ctx context.Context, claims jwtx.Claims) error {
	if claims.ID == "" {
		return nil
	}
	inserted, err := s.Revocations.Revoke(ctx, claims.ID, claims.ExpiresAtTime().UTC())
	if err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	if !inserted {
		return ErrTokenRevoked
	}
	return nil
}

// IssuePair builds the token pair for a user from their current memberships.
func (s *TokenService) IssuePair(ctx context.Context, q store.Store, user domain.User) (domain.TokenPair, error) {
	memberships, err := q.Memberships().ListMembershipsForUser(ctx, user.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	claims := domain.AccessClaims{
		UserID:        user.ID,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
	}
	for _, m := range memberships {
		claims.Memberships = append(claims.Memberships, domain.MembershipClaim{WorkspaceID: m.WorkspaceID, Role: m.Role})
	}

	access, err := s.IssueAccessToken(claims)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}
	refresh, err := s.IssueRefreshToken(user.ID)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func accessClaims(c jwtx.Claims) domain.AccessClaims {
	out := domain.AccessClaims{
		UserID:        c.Subject,
		Name:          c.Name,
		EmailVerified: c.EmailVerified,
	}
	for _, m := range c.Memberships {
		out.Memberships = append(out.Memberships, domain.MembershipClaim{
			WorkspaceID: m.WorkspaceID,
			Role:        domain.Role(m.Role),
		})
	}
	return out
}

// TokenError collapses jwtx failures onto the three messages clients see.
func TokenError(err error) error {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return ErrTokenExpired
	case errors.Is(err, jwtx.ErrNotYetValid):
		return ErrTokenNotActive
	default:
		return ErrTokenInvalid
	}
}

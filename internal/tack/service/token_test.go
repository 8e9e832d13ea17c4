package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

const b64url = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

func newTokenService(t *testing.T, now func() time.Time) *TokenService {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	s, err := NewTokenService(TokenConfig{
		Issuer:        "tack-test",
		AccessSecret:  []byte(testAccessSecret),
		RefreshSecret: []byte(testRefreshSecret),
		Now:           now,
	}, st.Revocations())
	require.NoError(t, err)
	return s
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTokenService(t, nil)

	claims := domain.AccessClaims{
		UserID:        "01HZX3J6Y8Q8K5N5J8ZQ0V7W1A",
		Name:          "Alice",
		EmailVerified: true,
		Memberships: []domain.MembershipClaim{
			{WorkspaceID: "ws-1", Role: domain.RoleOwner},
			{WorkspaceID: "ws-2", Role: domain.RoleMember},
		},
	}

	token, err := s.IssueAccessToken(claims)
	require.NoError(t, err)

	got, err := s.VerifyAccess(token)
	require.NoError(t, err)
	require.Equal(t, claims, got)

	t.Run("tampering any byte fails", func(t *testing.T) {
		for i := 0; i < len(token); i += 7 {
			b := []byte(token)
			pos := strings.IndexByte(b64url, b[i])
			if pos < 0 {
				continue
			}
			// Flip the high bit so trailing padding bits cannot hide it.
			b[i] = b64url[pos^32]
			_, err := s.VerifyAccess(string(b))
			require.Error(t, err, "byte %d", i)
			require.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
		}
	})
}

func TestTokenKindsDoNotCross(t *testing.T) {
	ctx := context.Background()
	s := newTokenService(t, nil)

	refresh, err := s.IssueRefreshToken("user-1")
	require.NoError(t, err)
	_, err = s.VerifyAccess(refresh)
	require.ErrorIs(t, err, ErrTokenInvalid)

	access, err := s.IssueAccessToken(domain.AccessClaims{UserID: "user-1"})
	require.NoError(t, err)
	_, err = s.VerifyRefresh(ctx, access)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenTimeErrors(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := base
	s := newTokenService(t, func() time.Time { return now })

	token, err := s.IssueAccessToken(domain.AccessClaims{UserID: "user-1"})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		now = base.Add(25 * time.Hour)
		_, err := s.VerifyAccess(token)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("not active yet", func(t *testing.T) {
		now = base.Add(-time.Hour)
		_, err := s.VerifyAccess(token)
		require.ErrorIs(t, err, ErrTokenNotActive)
	})

	t.Run("refresh lives seven days", func(t *testing.T) {
		now = base
		refresh, err := s.IssueRefreshToken("user-1")
		require.NoError(t, err)

		now = base.Add(6 * 24 * time.Hour)
		_, err = s.VerifyRefresh(context.Background(), refresh)
		require.NoError(t, err)

		now = base.Add(8 * 24 * time.Hour)
		_, err = s.VerifyRefresh(context.Background(), refresh)
		require.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestRevokedRefreshToken(t *testing.T) {
	ctx := context.Background()
	s := newTokenService(t, nil)

	token, err := s.IssueRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := s.VerifyRefresh(ctx, token)
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)

	require.NoError(t, s.Revoke(ctx, claims))
	_, err = s.VerifyRefresh(ctx, token)
	require.ErrorIs(t, err, ErrTokenRevoked)

	require.ErrorIs(t, s.Revoke(ctx, claims), ErrTokenRevoked, "a jti is revoked only once")
}

func TestWeakSecretRejected(t *testing.T) {
	_, err := NewTokenService(TokenConfig{
		AccessSecret:  []byte("short"),
		RefreshSecret: []byte(strings.Repeat("x", 40)),
	}, nil)
	require.Error(t, err)
}

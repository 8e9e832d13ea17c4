package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/tack/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var (
	accessSecret  = []byte("access-secret-access-secret-0123456789")
	refreshSecret = []byte("refresh-secret-refresh-secret-01234567")
)

func newHS256(t *testing.T, secret []byte, kind string, opts ...jwtx.Option) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(secret, kind, "tack", opts...)
	require.NoError(t, err)
	return h
}

func accessClaims(now time.Time) jwtx.Claims {
	c := jwtx.NewClaims(jwtx.KindAccess, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "tack", time.Hour, now)
	c.Name = "Ada Lovelace"
	c.EmailVerified = true
	c.Memberships = []jwtx.Membership{
		{WorkspaceID: "ws-1", Role: "OWNER"},
		{WorkspaceID: "ws-2", Role: "MEMBER"},
	}
	return c
}

func TestNewHS256(t *testing.T) {
	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := jwtx.NewHS256([]byte("short"), jwtx.KindAccess, "tack")
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := jwtx.NewHS256(accessSecret, "id", "tack")
		require.Error(t, err)
	})
}

func TestHS256RoundTrip(t *testing.T) {
	h := newHS256(t, accessSecret, jwtx.KindAccess)
	want := accessClaims(time.Now().Truncate(time.Second))

	token, err := h.Sign(want)
	require.NoError(t, err)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, want.Subject, got.Subject)
	require.Equal(t, want.Name, got.Name)
	require.Equal(t, want.EmailVerified, got.EmailVerified)
	require.Equal(t, want.Memberships, got.Memberships)
	require.Equal(t, want.ID, got.ID)
	require.True(t, want.ExpiresAt.Equal(got.ExpiresAt.Time))
}

func TestHS256Tampering(t *testing.T) {
	h := newHS256(t, accessSecret, jwtx.KindAccess)
	token, err := h.Sign(accessClaims(time.Now()))
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)

	// Positions inside each segment. The final character of a segment is
	// avoided because its low bits are padding.
	positions := []int{
		1,
		len(segments[0]) + 1 + len(segments[1])/2,
		len(segments[0]) + len(segments[1]) + 2 + len(segments[2])/2,
	}

	for _, pos := range positions {
		tampered := []byte(token)
		if tampered[pos] == 'A' {
			tampered[pos] = 'B'
		} else {
			tampered[pos] = 'A'
		}
		_, err := h.Verify(string(tampered))
		require.Error(t, err, "byte %d was changed", pos)
	}
}

func TestHS256Rejections(t *testing.T) {
	now := time.Now()
	access := newHS256(t, accessSecret, jwtx.KindAccess)
	refresh := newHS256(t, refreshSecret, jwtx.KindRefresh)

	t.Run("expired", func(t *testing.T) {
		c := accessClaims(now.Add(-2 * time.Hour))
		token, err := access.Sign(c)
		require.NoError(t, err)

		_, err = access.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := accessClaims(now.Add(time.Hour))
		token, err := access.Sign(c)
		require.NoError(t, err)

		_, err = access.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrNotYetValid)
	})

	t.Run("signed with the other secret", func(t *testing.T) {
		token, err := refresh.Sign(jwtx.NewClaims(jwtx.KindRefresh, "u", "tack", time.Hour, now))
		require.NoError(t, err)

		_, err = access.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("same secret but wrong kind", func(t *testing.T) {
		sameSecretRefresh := newHS256(t, accessSecret, jwtx.KindRefresh)
		token, err := sameSecretRefresh.Sign(jwtx.NewClaims(jwtx.KindRefresh, "u", "tack", time.Hour, now))
		require.NoError(t, err)

		_, err = access.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrWrongKind)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		c := accessClaims(now)
		c.Issuer = "someone-else"
		token, err := access.Sign(c)
		require.NoError(t, err)

		_, err = access.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("alg none", func(t *testing.T) {
		c := accessClaims(now)
		c.Kind = jwtx.KindAccess
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = access.Verify(token)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := access.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestHS256Clock(t *testing.T) {
	issued := time.Unix(1700000000, 0).UTC()
	at := issued
	h := newHS256(t, accessSecret, jwtx.KindAccess, jwtx.WithClock(func() time.Time { return at }))

	token, err := h.Sign(accessClaims(issued))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.NoError(t, err)

	at = issued.Add(2 * time.Hour)
	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

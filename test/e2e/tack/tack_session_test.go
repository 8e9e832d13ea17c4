package tack_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/tack/pkg/tacksdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterVerifyRefreshLogout walks an account through its whole token
// lifecycle: verification, refresh rotation and revocation on logout.
func TestRegisterVerifyRefreshLogout(t *testing.T) {
	c := setupTackContainer(t)
	client := tacksdk.NewSDKClient(c.BaseURL)
	ctx := t.Context()

	session := signUp(t, c, client, "alice")

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", me.Email)

	oldAccess := session.AccessToken()
	oldRefresh := session.RefreshToken()

	require.NoError(t, session.Refresh(ctx))
	require.NotEqual(t, oldRefresh, session.RefreshToken(), "refresh token should rotate")
	require.NotEqual(t, oldAccess, session.AccessToken(), "access token should rotate")

	t.Run("rotated refresh token is revoked", func(t *testing.T) {
		_, err := client.AuthenticateWithRefreshToken(ctx, oldRefresh)
		assertStatus(t, err, http.StatusUnauthorized, "reusing a rotated refresh token")
	})

	t.Run("logout revokes the current refresh token", func(t *testing.T) {
		current := session.RefreshToken()
		require.NoError(t, session.Logout(ctx))

		_, err := client.AuthenticateWithRefreshToken(ctx, current)
		assertStatus(t, err, http.StatusUnauthorized, "refresh after logout")
	})

	t.Run("login again", func(t *testing.T) {
		again, err := client.Login(ctx, "alice@example.com", testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, again.AccessToken())
	})
}

func TestRegisterValidation(t *testing.T) {
	c := setupTackContainer(t)
	client := tacksdk.NewSDKClient(c.BaseURL)
	ctx := t.Context()

	t.Run("weak password", func(t *testing.T) {
		_, err := client.Register(ctx, tacksdk.RegisterRequest{Name: "weak", Email: "weak@example.com", Password: "password"})
		assertStatus(t, err, http.StatusUnprocessableEntity, "weak password")

		var apiErr *tacksdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.NotEmpty(t, apiErr.Errors)
		require.Equal(t, "password", apiErr.Errors[0].Path)
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := tacksdk.RegisterRequest{Name: "dupe", Email: "dupe@example.com", Password: testPassword}
		_, err := client.Register(ctx, req)
		require.NoError(t, err)

		_, err = client.Register(ctx, req)
		assertStatus(t, err, http.StatusConflict, "duplicate email")
	})

	t.Run("wrong verification code", func(t *testing.T) {
		_, err := client.Register(ctx, tacksdk.RegisterRequest{Name: "typo", Email: "typo@example.com", Password: testPassword})
		require.NoError(t, err)

		_, err = client.VerifyEmail(ctx, "typo@example.com", "ZZZZZZ")
		require.Error(t, err)
	})
}

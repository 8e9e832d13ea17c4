package service

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/mail"
	"github.com/aussiebroadwan/tack/pkg/cryptox"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/stretchr/testify/require"
)

// lastCode pulls the verification code out of the most recent email.
func lastCode(t *testing.T, f *fixture, email string) string {
	t.Helper()
	msg, ok := f.mail.Last(mail.KindVerification, email)
	require.True(t, ok, "no verification email for %s", email)
	for _, field := range strings.Fields(msg.Text) {
		field = strings.TrimSuffix(field, ".")
		if len(field) == cryptox.OTPLength && field == strings.ToUpper(field) {
			return field
		}
	}
	t.Fatalf("no code in %q", msg.Text)
	return ""
}

// lastResetToken pulls the token out of the most recent reset link.
func lastResetToken(t *testing.T, f *fixture, email string) string {
	t.Helper()
	msg, ok := f.mail.Last(mail.KindPasswordReset, email)
	require.True(t, ok)
	_, after, found := strings.Cut(msg.Text, "token=")
	require.True(t, found)
	return strings.Fields(after)[0]
}

func TestRegisterAndVerify(t *testing.T) {
	f := newFixture(t)
	sessions := f.svc.Sessions

	user, err := sessions.Register(f.ctx, "Alice", "  Alice@Example.com ", testPassword)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Email)
	require.False(t, user.EmailVerified)

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := sessions.Register(f.ctx, "Other", "ALICE@example.com", testPassword)
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("login before verification never authenticates", func(t *testing.T) {
		res, err := sessions.Login(f.ctx, "alice@example.com", testPassword)
		require.NoError(t, err)
		require.True(t, res.RequiresVerification)
		require.Empty(t, res.Tokens.AccessToken)
		require.Empty(t, res.Tokens.RefreshToken)
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		_, err := sessions.VerifyEmail(f.ctx, "alice@example.com", "ZZZZZZ")
		require.ErrorIs(t, err, ErrInvalidOTP)
	})

	t.Run("code is case-insensitive and logs in", func(t *testing.T) {
		code := lastCode(t, f, "alice@example.com")
		pair, err := sessions.VerifyEmail(f.ctx, "alice@example.com", strings.ToLower(code))
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)

		claims, err := f.svc.Tokens.VerifyAccess(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.UserID)
		require.True(t, claims.EmailVerified)

		_, err = sessions.VerifyEmail(f.ctx, "alice@example.com", code)
		require.ErrorIs(t, err, ErrInvalidOTP, "codes are deleted on use")
	})

	t.Run("resend after verification conflicts", func(t *testing.T) {
		require.ErrorIs(t, sessions.SendVerification(f.ctx, "alice@example.com"), ErrAlreadyVerified)
	})
}

func TestVerifyEmailRejectsExpiredCode(t *testing.T) {
	f := newFixture(t)
	user, err := f.svc.Sessions.Register(f.ctx, "Bob", "bob@example.com", testPassword)
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, f.store.VerificationTokens().DeleteVerificationTokensForUser(f.ctx, user.ID))
	require.NoError(t, f.store.VerificationTokens().CreateVerificationToken(f.ctx, domain.VerificationToken{
		ID: idx.New().String(), UserID: user.ID, Code: "ABC123", ExpiresAt: past, CreatedAt: past,
	}))

	_, err = f.svc.Sessions.VerifyEmail(f.ctx, "bob@example.com", "ABC123")
	require.ErrorIs(t, err, ErrInvalidOTP)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	ws := f.workspace(t, alice)

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		_, err1 := f.svc.Sessions.Login(f.ctx, "nobody@example.com", testPassword)
		_, err2 := f.svc.Sessions.Login(f.ctx, alice.Email, "Wr0ngPass!")
		require.ErrorIs(t, err1, ErrInvalidCredentials)
		require.ErrorIs(t, err2, ErrInvalidCredentials)
		require.Equal(t, err1.Error(), err2.Error())
	})

	t.Run("verified user gets tokens with memberships", func(t *testing.T) {
		res, err := f.svc.Sessions.Login(f.ctx, "ALICE@example.com", testPassword)
		require.NoError(t, err)
		require.False(t, res.RequiresVerification)

		claims, err := f.svc.Tokens.VerifyAccess(res.Tokens.AccessToken)
		require.NoError(t, err)
		require.Equal(t, []domain.MembershipClaim{{WorkspaceID: ws.ID, Role: domain.RoleOwner}}, claims.Memberships)
	})
}

func TestRefreshRotation(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	res, err := f.svc.Sessions.Login(f.ctx, alice.Email, testPassword)
	require.NoError(t, err)
	first := res.Tokens.RefreshToken

	second, err := f.svc.Sessions.Refresh(f.ctx, first)
	require.NoError(t, err)
	require.NotEqual(t, first, second.RefreshToken)

	_, err = f.svc.Sessions.Refresh(f.ctx, first)
	require.ErrorIs(t, err, ErrTokenRevoked, "a rotated token is dead")

	t.Run("logout revokes", func(t *testing.T) {
		require.NoError(t, f.svc.Sessions.Logout(f.ctx, second.RefreshToken))
		_, err := f.svc.Sessions.Refresh(f.ctx, second.RefreshToken)
		require.ErrorIs(t, err, ErrTokenRevoked)
	})

	t.Run("concurrent refreshes rotate once", func(t *testing.T) {
		res, err := f.svc.Sessions.Login(f.ctx, alice.Email, testPassword)
		require.NoError(t, err)

		const callers = 8
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = f.svc.Sessions.Refresh(f.ctx, res.Tokens.RefreshToken)
			}()
		}
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++
				continue
			}
			require.ErrorIs(t, err, ErrTokenRevoked)
		}
		require.Equal(t, 1, wins)
	})

	t.Run("logout twice", func(t *testing.T) {
		res, err := f.svc.Sessions.Login(f.ctx, alice.Email, testPassword)
		require.NoError(t, err)
		claims, err := f.svc.Tokens.VerifyRefresh(f.ctx, res.Tokens.RefreshToken)
		require.NoError(t, err)

		require.NoError(t, f.svc.Tokens.Revoke(f.ctx, claims))
		require.NoError(t, f.svc.Sessions.Logout(f.ctx, res.Tokens.RefreshToken))
	})

	t.Run("logout tolerates garbage", func(t *testing.T) {
		require.NoError(t, f.svc.Sessions.Logout(f.ctx, "not-a-token"))
		require.NoError(t, f.svc.Sessions.Logout(f.ctx, ""))
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := f.svc.Sessions.Refresh(f.ctx, "")
		require.ErrorIs(t, err, ErrRefreshTokenRequired)
	})

	t.Run("deleted user", func(t *testing.T) {
		token, err := f.svc.Tokens.IssueRefreshToken(idx.New().String())
		require.NoError(t, err)
		_, err = f.svc.Sessions.Refresh(f.ctx, token)
		require.ErrorIs(t, err, ErrSessionUserGone)
	})
}

func TestPasswordReset(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	const next = "N3wPassw0rd!"

	require.NoError(t, f.svc.Sessions.ForgotPassword(f.ctx, alice.Email))
	token := lastResetToken(t, f, alice.Email)
	require.Len(t, token, 2*cryptox.TokenSize256)

	require.NoError(t, f.svc.Sessions.ResetPassword(f.ctx, token, next))

	t.Run("token is single use", func(t *testing.T) {
		err := f.svc.Sessions.ResetPassword(f.ctx, token, "An0therPass!")
		require.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("new password works", func(t *testing.T) {
		res, err := f.svc.Sessions.Login(f.ctx, alice.Email, next)
		require.NoError(t, err)
		require.NotEmpty(t, res.Tokens.AccessToken)
	})

	t.Run("expired token fails", func(t *testing.T) {
		raw, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
		require.NoError(t, err)
		past := time.Now().UTC().Add(-time.Minute)
		require.NoError(t, f.store.ResetTokens().CreateResetToken(f.ctx, domain.ResetToken{
			ID: idx.New().String(), UserID: alice.ID, TokenHash: cryptox.FingerprintToken(raw),
			ExpiresAt: past, CreatedAt: past.Add(-10 * time.Minute),
		}))
		require.ErrorIs(t, f.svc.Sessions.ResetPassword(f.ctx, raw, "An0therPass!"), ErrInvalidResetToken)
	})

	t.Run("only the fingerprint is stored", func(t *testing.T) {
		_, err := f.store.ResetTokens().GetResetTokenByHash(f.ctx, token)
		require.Error(t, err)
	})
}

func TestUnknownEmailPolicy(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.Sessions.ForgotPassword(f.ctx, "ghost@example.com"))
	require.NoError(t, f.svc.Sessions.SendVerification(f.ctx, "ghost@example.com"))
	require.Empty(t, f.mail.Sent())

	f.svc.Sessions.RevealUnknownEmail = true
	require.ErrorIs(t, f.svc.Sessions.ForgotPassword(f.ctx, "ghost@example.com"), ErrUnknownEmail)
	requireKind(t, f.svc.Sessions.SendVerification(f.ctx, "ghost@example.com"), domain.KindNotFound)
}

func TestChangePassword(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	before, err := f.store.Users().GetUserByID(f.ctx, alice.ID)
	require.NoError(t, err)

	t.Run("wrong current password leaves hash alone", func(t *testing.T) {
		err := f.svc.Sessions.ChangePassword(f.ctx, actor(alice), "Wr0ngPass!", "N3wPassw0rd!")
		require.ErrorIs(t, err, ErrIncorrectPassword)

		after, err := f.store.Users().GetUserByID(f.ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, before.PasswordHash, after.PasswordHash)
	})

	t.Run("correct current password", func(t *testing.T) {
		require.NoError(t, f.svc.Sessions.ChangePassword(f.ctx, actor(alice), testPassword, "N3wPassw0rd!"))
		_, err := f.svc.Sessions.Login(f.ctx, alice.Email, "N3wPassw0rd!")
		require.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := f.svc.Sessions.ChangePassword(f.ctx, domain.Actor{UserID: idx.New().String()}, testPassword, "N3wPassw0rd!")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestMe(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	me, err := f.svc.Sessions.Me(f.ctx, actor(alice))
	require.NoError(t, err)
	require.Equal(t, alice.Email, me.Email)
	require.True(t, me.EmailVerified)

	_, err = f.svc.Sessions.Me(f.ctx, domain.Actor{UserID: idx.New().String()})
	require.ErrorIs(t, err, ErrUserNotFound)
}

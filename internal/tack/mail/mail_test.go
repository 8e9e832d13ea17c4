package mail_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/mail"
	"github.com/stretchr/testify/require"
)

func TestComposer(t *testing.T) {
	c := mail.Composer{BaseURL: "https://tack.example/"}

	t.Run("verification", func(t *testing.T) {
		m := c.Verification("a@b.co", "Alice", "AB12CD", 10*time.Minute)
		require.Equal(t, mail.KindVerification, m.Kind)
		require.Contains(t, m.Text, "AB12CD")
		require.Contains(t, m.Text, "10 minutes")
	})

	t.Run("reset link carries token", func(t *testing.T) {
		m := c.PasswordReset("a@b.co", "Alice", "deadbeef", 10*time.Minute)
		require.Contains(t, m.Text, "https://tack.example/reset-password?token=deadbeef")
	})

	t.Run("invite escapes html", func(t *testing.T) {
		m := c.Invite("a@b.co", "Bob", "<Acme>", "ADMIN", "cafe", 7*24*time.Hour)
		require.Contains(t, m.HTML, "&lt;Acme&gt;")
		require.Contains(t, m.Text, "as admin")
		require.Contains(t, m.Text, "7 days")
		require.Contains(t, m.Text, "https://tack.example/invites/cafe")
	})
}

func TestMemory(t *testing.T) {
	var m mail.Memory
	ctx := context.Background()
	require.NoError(t, m.Send(ctx, mail.Message{To: "a@b.co", Kind: mail.KindVerification, Text: "first"}))
	require.NoError(t, m.Send(ctx, mail.Message{To: "a@b.co", Kind: mail.KindVerification, Text: "second"}))

	last, ok := m.Last(mail.KindVerification, "a@b.co")
	require.True(t, ok)
	require.Equal(t, "second", last.Text)

	_, ok = m.Last(mail.KindInvite, "a@b.co")
	require.False(t, ok)
	require.Len(t, m.Sent(), 2)
}

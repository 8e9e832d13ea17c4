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

func TestCreateInvite(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	member := f.user(t, "member")
	ws := f.workspace(t, owner)
	f.join(t, ws, member, domain.RoleMember)

	issued, err := f.svc.Invites.CreateInvite(f.ctx, actor(owner), ws.ID, " New@Example.com", domain.RoleMember)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", issued.Email)
	require.Len(t, issued.Token, 2*cryptox.TokenSize256)
	require.Equal(t, cryptox.FingerprintToken(issued.Token), issued.TokenHash)
	require.WithinDuration(t, time.Now().Add(DefaultInviteTTL), issued.ExpiresAt, time.Minute)

	msg, ok := f.mail.Last(mail.KindInvite, "new@example.com")
	require.True(t, ok)
	require.True(t, strings.Contains(msg.Text, issued.Token))

	t.Run("members cannot invite", func(t *testing.T) {
		_, err := f.svc.Invites.CreateInvite(f.ctx, actor(member), ws.ID, "x@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("owner role is not invitable", func(t *testing.T) {
		_, err := f.svc.Invites.CreateInvite(f.ctx, actor(owner), ws.ID, "x@example.com", domain.RoleOwner)
		require.ErrorIs(t, err, ErrUnassignableRole)
	})

	t.Run("existing member", func(t *testing.T) {
		_, err := f.svc.Invites.CreateInvite(f.ctx, actor(owner), ws.ID, member.Email, domain.RoleAdmin)
		require.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("active invite", func(t *testing.T) {
		_, err := f.svc.Invites.CreateInvite(f.ctx, actor(owner), ws.ID, "NEW@example.com", domain.RoleAdmin)
		require.ErrorIs(t, err, ErrActiveInvite)
	})

	t.Run("expired invite is replaced", func(t *testing.T) {
		past := time.Now().UTC().Add(-time.Hour)
		require.NoError(t, f.store.Invites().CreateInvite(f.ctx, domain.Invite{
			ID: idx.New().String(), WorkspaceID: ws.ID, Email: "late@example.com", Role: domain.RoleMember,
			TokenHash: cryptox.FingerprintToken("stale"), InvitedBy: owner.ID, ExpiresAt: past, CreatedAt: past,
		}))

		_, err := f.svc.Invites.CreateInvite(f.ctx, actor(owner), ws.ID, "late@example.com", domain.RoleMember)
		require.NoError(t, err)
	})

	t.Run("pending list hides expired", func(t *testing.T) {
		pending, err := f.svc.Invites.ListPendingInvites(f.ctx, actor(owner), ws.ID)
		require.NoError(t, err)
		require.Len(t, pending, 2)

		_, err = f.svc.Invites.ListPendingInvites(f.ctx, actor(member), ws.ID)
		require.ErrorIs(t, err, ErrInsufficientRole)
	})
}

func TestConcurrentInvitesPersistOnce(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	ws := f.workspace(t, owner)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Invites.CreateInvite(f.ctx, actor(owner), ws.ID, "a@x.com", domain.RoleMember)
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		require.ErrorIs(t, err, ErrActiveInvite)
	}
	require.Equal(t, 1, created)

	pending, err := f.store.Invites().ListActiveInvites(f.ctx, ws.ID, time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, pending, 1)
}

func TestVerifyAndAcceptInvite(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	invitee := f.user(t, "invitee")
	stranger := f.user(t, "stranger")
	ws := f.workspace(t, owner)

	issued, err := f.svc.Invites.CreateInvite(f.ctx, actor(owner), ws.ID, invitee.Email, domain.RoleAdmin)
	require.NoError(t, err)

	t.Run("preview", func(t *testing.T) {
		preview, err := f.svc.Invites.VerifyInvite(f.ctx, issued.Token)
		require.NoError(t, err)
		require.Equal(t, domain.InvitePreview{Email: invitee.Email, WorkspaceName: ws.Name}, preview)

		_, err = f.svc.Invites.VerifyInvite(f.ctx, "deadbeef")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})

	t.Run("wrong user is forbidden and gains nothing", func(t *testing.T) {
		_, err := f.svc.Invites.AcceptInvite(f.ctx, actor(stranger), issued.Token)
		require.ErrorIs(t, err, ErrInviteEmail)

		_, err = f.svc.Access.Authorize(f.ctx, actor(stranger), ws.ID)
		require.ErrorIs(t, err, ErrNotWorkspaceMember)
	})

	t.Run("invitee joins at the invited role", func(t *testing.T) {
		m, err := f.svc.Invites.AcceptInvite(f.ctx, actor(invitee), issued.Token)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, m.Role)

		_, err = f.svc.Invites.VerifyInvite(f.ctx, issued.Token)
		require.ErrorIs(t, err, ErrInviteNotFound, "accepted invites are consumed")
	})
}

func TestAcceptExpiredInvite(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	invitee := f.user(t, "invitee")
	ws := f.workspace(t, owner)

	past := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, f.store.Invites().CreateInvite(f.ctx, domain.Invite{
		ID: idx.New().String(), WorkspaceID: ws.ID, Email: invitee.Email, Role: domain.RoleMember,
		TokenHash: cryptox.FingerprintToken("expired-token"), InvitedBy: owner.ID, ExpiresAt: past, CreatedAt: past,
	}))

	_, err := f.svc.Invites.AcceptInvite(f.ctx, actor(invitee), "expired-token")
	require.ErrorIs(t, err, ErrInviteNotFound)
}

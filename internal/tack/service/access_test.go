package service

import (
	"testing"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	member := f.user(t, "member")
	outsider := f.user(t, "outsider")
	ws := f.workspace(t, owner)
	f.join(t, ws, member, domain.RoleMember)

	t.Run("non-member", func(t *testing.T) {
		_, err := f.svc.Access.Authorize(f.ctx, actor(outsider), ws.ID)
		require.ErrorIs(t, err, ErrNotWorkspaceMember)
	})

	t.Run("any role when none given", func(t *testing.T) {
		m, err := f.svc.Access.Authorize(f.ctx, actor(member), ws.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, m.Role)
	})

	t.Run("role outside allowed set", func(t *testing.T) {
		_, err := f.svc.Access.Authorize(f.ctx, actor(member), ws.ID, domain.Managers...)
		require.ErrorIs(t, err, ErrInsufficientRole)
	})

	t.Run("role changes apply immediately", func(t *testing.T) {
		// The member's token still claims MEMBER; the store is what counts.
		m, err := f.store.Memberships().GetMembership(f.ctx, member.ID, ws.ID)
		require.NoError(t, err)
		require.NoError(t, f.store.Memberships().UpdateMembershipRole(f.ctx, m.ID, domain.RoleAdmin))

		_, err = f.svc.Access.Authorize(f.ctx, actor(member), ws.ID, domain.Managers...)
		require.NoError(t, err)
	})
}

func TestPrivateBoardAccess(t *testing.T) {
	f := newFixture(t)
	u1 := f.user(t, "u1")
	u2 := f.user(t, "u2")
	admin := f.user(t, "admin")
	ws := f.workspace(t, u1)
	f.join(t, ws, u2, domain.RoleMember)
	f.join(t, ws, admin, domain.RoleAdmin)

	board := f.board(t, u1, ws, domain.VisibilityPrivate)

	_, err := f.svc.Boards.Get(f.ctx, actor(u2), ws.ID, board.ID)
	require.ErrorIs(t, err, ErrPrivateBoard)

	_, err = f.svc.Boards.Get(f.ctx, actor(admin), ws.ID, board.ID)
	require.NoError(t, err, "managers see every board")

	require.NoError(t, f.svc.Boards.AddMember(f.ctx, actor(u1), ws.ID, board.ID, u2.ID))

	_, err = f.svc.Boards.Get(f.ctx, actor(u2), ws.ID, board.ID)
	require.NoError(t, err)
}

func TestBoardFromAnotherWorkspace(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	wsA := f.workspace(t, alice)
	wsB := f.workspace(t, bob)
	boardB := f.board(t, bob, wsB, domain.VisibilityPublic)

	_, err := f.svc.Boards.Get(f.ctx, actor(alice), wsA.ID, boardB.ID)
	require.ErrorIs(t, err, ErrBoardNotFound)
}

func TestAuthorizeCardResolvesWorkspace(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	ws := f.workspace(t, alice)
	board := f.board(t, alice, ws, domain.VisibilityPublic)

	card, err := f.svc.Cards.Create(f.ctx, actor(alice), board.Lists[0].ID, NewCard{Title: "Ship it"})
	require.NoError(t, err)

	access, err := f.svc.Access.AuthorizeCard(f.ctx, actor(alice), card.ID)
	require.NoError(t, err)
	require.Equal(t, board.ID, access.Board.ID)

	_, err = f.svc.Access.AuthorizeCard(f.ctx, actor(bob), card.ID)
	require.ErrorIs(t, err, ErrNotWorkspaceMember)

	_, err = f.svc.Access.AuthorizeCard(f.ctx, actor(alice), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	require.ErrorIs(t, err, ErrCardNotFound)
}

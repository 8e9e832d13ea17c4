package service

import (
	"testing"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	ws := f.workspace(t, owner)
	board := f.board(t, owner, ws, domain.VisibilityPublic)
	todo, doing := board.Lists[0], board.Lists[1]

	desc := "details"
	high := domain.PriorityHigh
	first, err := f.svc.Cards.Create(f.ctx, actor(owner), todo.ID, NewCard{Title: "First", Description: &desc, Priority: &high})
	require.NoError(t, err)
	require.Equal(t, domain.StatusToDo, first.Status)
	require.Equal(t, domain.PriorityHigh, first.Priority)
	require.Equal(t, 1, first.Position)

	second, err := f.svc.Cards.Create(f.ctx, actor(owner), todo.ID, NewCard{Title: "Second"})
	require.NoError(t, err)
	require.Equal(t, domain.PriorityMedium, second.Priority)
	require.Equal(t, 2, second.Position)

	t.Run("update patches only given fields", func(t *testing.T) {
		done := domain.StatusDone
		got, err := f.svc.Cards.Update(f.ctx, actor(owner), first.ID, domain.CardPatch{Status: &done})
		require.NoError(t, err)
		require.Equal(t, domain.StatusDone, got.Status)
		require.Equal(t, "First", got.Title)
		require.Equal(t, &desc, got.Description)
	})

	t.Run("reorder across lists", func(t *testing.T) {
		err := f.svc.Cards.Reorder(f.ctx, actor(owner), []domain.CardPosition{
			{ID: first.ID, ListID: doing.ID, Position: 1},
			{ID: second.ID, ListID: todo.ID, Position: 1},
		})
		require.NoError(t, err)

		got, err := f.svc.Cards.Get(f.ctx, actor(owner), first.ID)
		require.NoError(t, err)
		require.Equal(t, doing.ID, got.ListID)
	})

	t.Run("reorder into another board fails", func(t *testing.T) {
		other := f.board(t, owner, ws, domain.VisibilityPublic)
		err := f.svc.Cards.Reorder(f.ctx, actor(owner), []domain.CardPosition{
			{ID: first.ID, ListID: other.Lists[0].ID, Position: 1},
		})
		require.ErrorIs(t, err, ErrForeignCards)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.svc.Cards.Delete(f.ctx, actor(owner), second.ID))
		_, err := f.svc.Cards.Get(f.ctx, actor(owner), second.ID)
		require.ErrorIs(t, err, ErrCardNotFound)
	})
}

func TestAssignCard(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	bob := f.user(t, "bob")
	admin := f.user(t, "admin")
	outsider := f.user(t, "outsider")
	ws := f.workspace(t, owner)
	f.join(t, ws, bob, domain.RoleMember)
	f.join(t, ws, admin, domain.RoleAdmin)
	board := f.board(t, owner, ws, domain.VisibilityPrivate)

	card, err := f.svc.Cards.Create(f.ctx, actor(owner), board.Lists[0].ID, NewCard{Title: "Task"})
	require.NoError(t, err)

	_, err = f.svc.Cards.Assign(f.ctx, actor(owner), card.ID, &outsider.ID)
	require.ErrorIs(t, err, ErrAssigneeOutsider)

	_, err = f.svc.Cards.Assign(f.ctx, actor(owner), card.ID, &bob.ID)
	require.ErrorIs(t, err, ErrAssigneeNoAccess)

	got, err := f.svc.Cards.Assign(f.ctx, actor(owner), card.ID, &admin.ID)
	require.NoError(t, err)
	require.Equal(t, &admin.ID, got.AssigneeID)

	got, err = f.svc.Cards.Assign(f.ctx, actor(owner), card.ID, nil)
	require.NoError(t, err)
	require.Nil(t, got.AssigneeID)
}

func TestComments(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner")
	bob := f.user(t, "bob")
	carol := f.user(t, "carol")
	ws := f.workspace(t, owner)
	f.join(t, ws, bob, domain.RoleMember)
	f.join(t, ws, carol, domain.RoleMember)
	board := f.board(t, owner, ws, domain.VisibilityPublic)

	card, err := f.svc.Cards.Create(f.ctx, actor(bob), board.Lists[0].ID, NewCard{Title: "Task"})
	require.NoError(t, err)

	c, err := f.svc.Comments.Create(f.ctx, actor(bob), card.ID, "looks good")
	require.NoError(t, err)
	require.Equal(t, "bob", c.AuthorName)

	t.Run("only the author edits", func(t *testing.T) {
		_, err := f.svc.Comments.Update(f.ctx, actor(carol), card.ID, c.ID, "hijacked")
		require.ErrorIs(t, err, ErrCommentNotAuthor)

		_, err = f.svc.Comments.Update(f.ctx, actor(owner), card.ID, c.ID, "hijacked")
		require.ErrorIs(t, err, ErrCommentNotAuthor, "managers cannot edit either")

		got, err := f.svc.Comments.Update(f.ctx, actor(bob), card.ID, c.ID, "looks great")
		require.NoError(t, err)
		require.Equal(t, "looks great", got.Content)
	})

	t.Run("comment must belong to the card", func(t *testing.T) {
		other, err := f.svc.Cards.Create(f.ctx, actor(bob), board.Lists[0].ID, NewCard{Title: "Other"})
		require.NoError(t, err)
		_, err = f.svc.Comments.Update(f.ctx, actor(bob), other.ID, c.ID, "moved")
		require.ErrorIs(t, err, ErrCommentNotFound)
	})

	t.Run("delete by author or manager", func(t *testing.T) {
		require.ErrorIs(t, f.svc.Comments.Delete(f.ctx, actor(carol), card.ID, c.ID), ErrCommentNotAuthor)
		require.NoError(t, f.svc.Comments.Delete(f.ctx, actor(owner), card.ID, c.ID))

		list, err := f.svc.Comments.List(f.ctx, actor(bob), card.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

package tack_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/tack/pkg/tacksdk"
	"github.com/stretchr/testify/require"
)

// TestWorkspaceLifecycle covers invitations, role changes and the board,
// list, card and comment hierarchy across two accounts.
func TestWorkspaceLifecycle(t *testing.T) {
	c := setupTackContainer(t)
	client := tacksdk.NewSDKClient(c.BaseURL)
	ctx := t.Context()

	owner := signUp(t, c, client, "alice")
	member := signUp(t, c, client, "bob")

	ws, err := owner.CreateWorkspace(ctx, "Acme")
	require.NoError(t, err)
	require.Equal(t, "OWNER", ws.Role)

	_, err = member.GetWorkspace(ctx, ws.ID)
	assertStatus(t, err, http.StatusForbidden, "outsider reads workspace")

	// Invite and accept
	issued, err := owner.Invite(ctx, ws.ID, "bob@example.com", "MEMBER")
	require.NoError(t, err)

	preview, err := client.VerifyInvite(ctx, issued.Token)
	require.NoError(t, err)
	require.Equal(t, "Acme", preview.WorkspaceName)

	_, err = owner.Invite(ctx, ws.ID, "bob@example.com", "MEMBER")
	assertStatus(t, err, http.StatusConflict, "second pending invite")

	membership, err := member.AcceptInvite(ctx, issued.Token)
	require.NoError(t, err)
	require.Equal(t, "MEMBER", membership.Role)

	members, err := owner.ListMembers(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	// Members cannot manage boards
	_, err = member.CreateBoard(ctx, ws.ID, tacksdk.CreateBoardRequest{Name: "Nope"})
	assertStatus(t, err, http.StatusForbidden, "member creates board")

	board, err := owner.CreateBoard(ctx, ws.ID, tacksdk.CreateBoardRequest{Name: "Roadmap"})
	require.NoError(t, err)
	require.Len(t, board.Lists, 4)

	// Cards
	card, err := member.CreateCard(ctx, board.Lists[0].ID, tacksdk.CreateCardRequest{Title: "Write docs"})
	require.NoError(t, err)

	assignee := membership.UserID
	card, err = owner.AssignCard(ctx, card.ID, &assignee)
	require.NoError(t, err)
	require.NotNil(t, card.AssigneeID)

	require.NoError(t, member.ReorderCards(ctx, []tacksdk.CardPosition{
		{ID: card.ID, ListID: board.Lists[1].ID, Position: 0},
	}))
	moved, err := owner.GetCard(ctx, card.ID)
	require.NoError(t, err)
	require.Equal(t, board.Lists[1].ID, moved.ListID)

	// Comments
	comment, err := member.AddComment(ctx, card.ID, "Started")
	require.NoError(t, err)

	_, err = owner.EditComment(ctx, card.ID, comment.ID, "Hijacked")
	assertStatus(t, err, http.StatusForbidden, "editing someone else's comment")

	require.NoError(t, owner.DeleteComment(ctx, card.ID, comment.ID), "managers may delete any comment")

	// Promote then remove
	updated, err := owner.UpdateMemberRole(ctx, ws.ID, membership.ID, "ADMIN")
	require.NoError(t, err)
	require.Equal(t, "ADMIN", updated.Role)

	require.NoError(t, owner.RemoveMember(ctx, ws.ID, membership.ID))

	_, err = member.ListBoards(ctx, ws.ID)
	assertStatus(t, err, http.StatusForbidden, "removed member lists boards")

	// Workspace deletion cascades
	require.NoError(t, owner.DeleteWorkspace(ctx, ws.ID))
	_, err = owner.GetCard(ctx, card.ID)
	assertStatus(t, err, http.StatusNotFound, "card after workspace deletion")
}

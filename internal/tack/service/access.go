package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

// AccessResolver decides what an actor may touch. Roles are always read
// from the store; membership claims inside access tokens are never trusted.
//
// Call it before opening a transaction: it reads through Store.
type AccessResolver struct {
	Store store.Store
}

// BoardAccess is a resolved grant on a board.
type BoardAccess struct {
	Membership domain.Membership
	Board      domain.Board
}

// Authorize returns the actor's membership in the workspace if its role is
// one of allowed. No roles means any member.
func (r *AccessResolver) Authorize(ctx context.Context, actor domain.Actor, workspaceID string, allowed ...domain.Role) (domain.Membership, error) {
	m, err := r.Store.Memberships().GetMembership(ctx, actor.UserID, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Info("workspace access denied",
				slog.String("workspace_id", workspaceID),
				slog.String("reason", "not a member"),
			)
			return domain.Membership{}, ErrNotWorkspaceMember
		}
		return domain.Membership{}, err
	}

	if !m.Role.In(allowed...) {
		slogx.FromContext(ctx).Info("workspace access denied",
			slog.String("workspace_id", workspaceID),
			slog.String("role", string(m.Role)),
		)
		return domain.Membership{}, ErrInsufficientRole
	}
	return m, nil
}

// AuthorizeBoard authorizes the workspace, then the board inside it. A board
// from another workspace is reported as missing.
func (r *AccessResolver) AuthorizeBoard(ctx context.Context, actor domain.Actor, workspaceID, boardID string, allowed ...domain.Role) (BoardAccess, error) {
	m, err := r.Authorize(ctx, actor, workspaceID, allowed...)
	if err != nil {
		return BoardAccess{}, err
	}

	board, err := r.Store.Boards().GetBoardByID(ctx, boardID)
	if err != nil {
		return BoardAccess{}, notFound(err, ErrBoardNotFound)
	}
	if board.WorkspaceID != workspaceID {
		return BoardAccess{}, ErrBoardNotFound
	}

	if err := r.CanViewBoard(ctx, m, board); err != nil {
		return BoardAccess{}, err
	}
	return BoardAccess{Membership: m, Board: board}, nil
}

// CanViewBoard applies the board rule: PUBLIC boards are open to every
// member, managers see everything, and a MEMBER needs a board grant for a
// PRIVATE board.
func (r *AccessResolver) CanViewBoard(ctx context.Context, m domain.Membership, board domain.Board) error {
	if board.Visibility == domain.VisibilityPublic || m.Role.IsManager() {
		return nil
	}

	ok, err := r.Store.BoardMembers().IsBoardMember(ctx, board.ID, m.UserID)
	if err != nil {
		return err
	}
	if !ok {
		slogx.FromContext(ctx).Info("private board access denied", slog.String("board_id", board.ID))
		return ErrPrivateBoard
	}
	return nil
}

// AuthorizeList resolves the list's board and workspace and applies the
// board rule.
func (r *AccessResolver) AuthorizeList(ctx context.Context, actor domain.Actor, listID string) (BoardAccess, error) {
	loc, err := r.Store.Lists().LocateList(ctx, listID)
	if err != nil {
		return BoardAccess{}, notFound(err, ErrListNotFound)
	}
	return r.AuthorizeBoard(ctx, actor, loc.WorkspaceID, loc.BoardID)
}

// AuthorizeCard resolves card → list → board → workspace and applies the
// board rule.
func (r *AccessResolver) AuthorizeCard(ctx context.Context, actor domain.Actor, cardID string) (BoardAccess, error) {
	loc, err := r.Store.Cards().LocateCard(ctx, cardID)
	if err != nil {
		return BoardAccess{}, notFound(err, ErrCardNotFound)
	}
	return r.AuthorizeBoard(ctx, actor, loc.WorkspaceID, loc.BoardID)
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

type BoardService struct {
	Store  store.Store
	Access *AccessResolver
}

// BoardPatch holds the optional fields of a board update.
type BoardPatch struct {
	Name       *string
	Visibility *domain.Visibility
}

// Create adds a board with the default lists. The creator of a PRIVATE
// board is granted access to it.
func (s *BoardService) Create(ctx context.Context, actor domain.Actor, workspaceID, name string, visibility domain.Visibility) (domain.BoardDetail, error) {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.Managers...); err != nil {
		return domain.BoardDetail{}, err
	}
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}

	now := time.Now().UTC()
	board := domain.Board{
		ID:          idx.New().String(),
		WorkspaceID: workspaceID,
		Name:        name,
		Visibility:  visibility,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	detail := domain.BoardDetail{Board: board, Lists: make([]domain.ListWithCards, 0, len(domain.DefaultLists))}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Boards().CreateBoard(ctx, board); err != nil {
			return err
		}
		for i, listName := range domain.DefaultLists {
			list := domain.List{
				ID:        idx.New().String(),
				BoardID:   board.ID,
				Name:      listName,
				Position:  i + 1,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := tx.Lists().CreateList(ctx, list); err != nil {
				return err
			}
			detail.Lists = append(detail.Lists, domain.ListWithCards{List: list, Cards: []domain.Card{}})
		}
		if visibility == domain.VisibilityPrivate {
			return tx.BoardMembers().AddBoardMember(ctx, board.ID, actor.UserID)
		}
		return nil
	})
	if err != nil {
		return domain.BoardDetail{}, err
	}

	slogx.FromContext(ctx).Info("board created",
		slog.String("workspace_id", workspaceID),
		slog.String("board_id", board.ID),
		slog.String("visibility", string(visibility)),
	)
	return detail, nil
}

// ListForUser returns the boards the actor can open. Managers see every
// board; members see PUBLIC boards and PRIVATE boards they were added to.
func (s *BoardService) ListForUser(ctx context.Context, actor domain.Actor, workspaceID string) ([]domain.Board, error) {
	m, err := s.Access.Authorize(ctx, actor, workspaceID)
	if err != nil {
		return nil, err
	}
	if m.Role.IsManager() {
		return s.Store.Boards().ListBoards(ctx, workspaceID)
	}
	return s.Store.Boards().ListVisibleBoards(ctx, workspaceID, actor.UserID)
}

// Get returns a board with its lists and cards in position order.
func (s *BoardService) Get(ctx context.Context, actor domain.Actor, workspaceID, boardID string) (domain.BoardDetail, error) {
	access, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID)
	if err != nil {
		return domain.BoardDetail{}, err
	}

	lists, err := s.Store.Lists().ListListsByBoard(ctx, boardID)
	if err != nil {
		return domain.BoardDetail{}, err
	}
	cards, err := s.Store.Cards().ListCardsByBoard(ctx, boardID)
	if err != nil {
		return domain.BoardDetail{}, err
	}

	byList := make(map[string][]domain.Card, len(lists))
	for _, c := range cards {
		byList[c.ListID] = append(byList[c.ListID], c)
	}

	detail := domain.BoardDetail{Board: access.Board, Lists: make([]domain.ListWithCards, 0, len(lists))}
	for _, l := range lists {
		lc := byList[l.ID]
		if lc == nil {
			lc = []domain.Card{}
		}
		detail.Lists = append(detail.Lists, domain.ListWithCards{List: l, Cards: lc})
	}
	return detail, nil
}

func (s *BoardService) Update(ctx context.Context, actor domain.Actor, workspaceID, boardID string, patch BoardPatch) (domain.Board, error) {
	access, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID, domain.Managers...)
	if err != nil {
		return domain.Board{}, err
	}

	board := access.Board
	if patch.Name != nil {
		board.Name = *patch.Name
	}
	if patch.Visibility != nil {
		board.Visibility = *patch.Visibility
	}

	if err := s.Store.Boards().UpdateBoard(ctx, board.ID, board.Name, board.Visibility); err != nil {
		return domain.Board{}, notFound(err, ErrBoardNotFound)
	}
	return notFoundBoard(s.Store.Boards().GetBoardByID(ctx, board.ID))
}

func (s *BoardService) Delete(ctx context.Context, actor domain.Actor, workspaceID, boardID string) error {
	if _, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID, domain.Managers...); err != nil {
		return err
	}
	if err := s.Store.Boards().DeleteBoard(ctx, boardID); err != nil {
		return notFound(err, ErrBoardNotFound)
	}
	slogx.FromContext(ctx).Info("board deleted", slog.String("board_id", boardID))
	return nil
}

// AddMember grants a workspace member access to a PRIVATE board.
func (s *BoardService) AddMember(ctx context.Context, actor domain.Actor, workspaceID, boardID, userID string) error {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.Managers...); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Board must exist in this workspace.
		board, err := tx.Boards().GetBoardByID(ctx, boardID)
		if err != nil {
			return notFound(err, ErrBoardNotFound)
		}
		if board.WorkspaceID != workspaceID {
			return ErrBoardNotFound
		}

		// 2. Grants only mean something on private boards.
		if board.Visibility != domain.VisibilityPrivate {
			return ErrPublicBoardMembers
		}

		// 3. Target must already be in the workspace.
		if _, err := tx.Memberships().GetMembership(ctx, userID, workspaceID); err != nil {
			return notFound(err, ErrBoardMemberOutsider)
		}

		// 4. Insert; the primary key rejects duplicates.
		if err := tx.BoardMembers().AddBoardMember(ctx, boardID, userID); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrBoardMemberExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("board member added",
		slog.String("board_id", boardID),
		slog.String("member_id", userID),
	)
	return nil
}

func (s *BoardService) RemoveMember(ctx context.Context, actor domain.Actor, workspaceID, boardID, userID string) error {
	if _, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID, domain.Managers...); err != nil {
		return err
	}
	if err := s.Store.BoardMembers().RemoveBoardMember(ctx, boardID, userID); err != nil {
		return notFound(err, ErrBoardMemberMissing)
	}
	slogx.FromContext(ctx).Info("board member removed",
		slog.String("board_id", boardID),
		slog.String("member_id", userID),
	)
	return nil
}

func (s *BoardService) ListMembers(ctx context.Context, actor domain.Actor, workspaceID, boardID string) ([]domain.BoardMember, error) {
	if _, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID); err != nil {
		return nil, err
	}
	return s.Store.BoardMembers().ListBoardMembers(ctx, boardID)
}

func notFoundBoard(b domain.Board, err error) (domain.Board, error) {
	if err != nil {
		return domain.Board{}, notFound(err, ErrBoardNotFound)
	}
	return b, nil
}

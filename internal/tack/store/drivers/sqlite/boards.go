package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type boardsRepo struct {
	q *gen.Queries
}

func (r *boardsRepo) CreateBoard(ctx context.Context, b domain.Board) error {
	return r.q.CreateBoard(ctx, gen.CreateBoardParams{
		ID:          b.ID,
		WorkspaceID: b.WorkspaceID,
		Name:        b.Name,
		Visibility:  string(b.Visibility),
	})
}

func (r *boardsRepo) GetBoardByID(ctx context.Context, id string) (domain.Board, error) {
	row, err := r.q.GetBoardByID(ctx, id)
	if err != nil {
		return domain.Board{}, mapNotFound(err)
	}
	return mapBoard(row), nil
}

func (r *boardsRepo) ListBoards(ctx context.Context, workspaceID string) ([]domain.Board, error) {
	rows, err := r.q.ListBoards(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return mapBoards(rows), nil
}

func (r *boardsRepo) ListVisibleBoards(ctx context.Context, workspaceID, userID string) ([]domain.Board, error) {
	rows, err := r.q.ListVisibleBoards(ctx, gen.ListVisibleBoardsParams{WorkspaceID: workspaceID, UserID: userID})
	if err != nil {
		return nil, err
	}
	return mapBoards(rows), nil
}

func (r *boardsRepo) UpdateBoard(ctx context.Context, id string, name string, visibility domain.Visibility) error {
	return r.q.UpdateBoard(ctx, gen.UpdateBoardParams{Name: name, Visibility: string(visibility), ID: id})
}

func (r *boardsRepo) DeleteBoard(ctx context.Context, id string) error {
	return r.q.DeleteBoard(ctx, id)
}

type boardMembersRepo struct {
	q *gen.Queries
}

func (r *boardMembersRepo) AddBoardMember(ctx context.Context, boardID, userID string) error {
	err := r.q.AddBoardMember(ctx, gen.AddBoardMemberParams{BoardID: boardID, UserID: userID})
	return mapConstraint(err)
}

func (r *boardMembersRepo) RemoveBoardMember(ctx context.Context, boardID, userID string) error {
	n, err := r.q.RemoveBoardMember(ctx, gen.RemoveBoardMemberParams{BoardID: boardID, UserID: userID})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *boardMembersRepo) IsBoardMember(ctx context.Context, boardID, userID string) (bool, error) {
	n, err := r.q.CountBoardMember(ctx, gen.CountBoardMemberParams{BoardID: boardID, UserID: userID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *boardMembersRepo) ListBoardMembers(ctx context.Context, boardID string) ([]domain.BoardMember, error) {
	rows, err := r.q.ListBoardMembers(ctx, boardID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BoardMember, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.BoardMember{
			BoardID:   row.BoardID,
			UserID:    row.UserID,
			Name:      row.Name,
			Email:     row.Email,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (r *boardMembersRepo) RemoveUserFromWorkspaceBoards(ctx context.Context, workspaceID, userID string) error {
	return r.q.DeleteWorkspaceBoardMembersForUser(ctx, gen.DeleteWorkspaceBoardMembersForUserParams{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
}

func mapBoard(row gen.Board) domain.Board {
	return domain.Board{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		Visibility:  domain.Visibility(row.Visibility),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapBoards(rows []gen.Board) []domain.Board {
	out := make([]domain.Board, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapBoard(row))
	}
	return out
}

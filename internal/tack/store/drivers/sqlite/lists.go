package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type listsRepo struct {
	q *gen.Queries
}

func (r *listsRepo) CreateList(ctx context.Context, l domain.List) error {
	return r.q.CreateList(ctx, gen.CreateListParams{
		ID:       l.ID,
		BoardID:  l.BoardID,
		Name:     l.Name,
		Position: int64(l.Position),
	})
}

func (r *listsRepo) GetListByID(ctx context.Context, id string) (domain.List, error) {
	row, err := r.q.GetListByID(ctx, id)
	if err != nil {
		return domain.List{}, mapNotFound(err)
	}
	return mapList(row), nil
}

func (r *listsRepo) ListListsByBoard(ctx context.Context, boardID string) ([]domain.List, error) {
	rows, err := r.q.ListListsByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.List, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapList(row))
	}
	return out, nil
}

func (r *listsRepo) MaxListPosition(ctx context.Context, boardID string) (int, error) {
	n, err := r.q.MaxListPosition(ctx, boardID)
	return int(n), err
}

func (r *listsRepo) UpdateListPosition(ctx context.Context, id string, position int) error {
	return r.q.UpdateListPosition(ctx, gen.UpdateListPositionParams{Position: int64(position), ID: id})
}

func (r *listsRepo) LocateList(ctx context.Context, id string) (domain.Location, error) {
	row, err := r.q.LocateList(ctx, id)
	if err != nil {
		return domain.Location{}, mapNotFound(err)
	}
	return domain.Location{WorkspaceID: row.WorkspaceID, BoardID: row.BoardID, ListID: row.ListID}, nil
}

func mapList(row gen.List) domain.List {
	return domain.List{
		ID:        row.ID,
		BoardID:   row.BoardID,
		Name:      row.Name,
		Position:  int(row.Position),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type cardsRepo struct {
	q *gen.Queries
}

func (r *cardsRepo) CreateCard(ctx context.Context, c domain.Card) error {
	return r.q.CreateCard(ctx, gen.CreateCardParams{
		ID:          c.ID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: mapOptionalString(c.Description),
		Status:      string(c.Status),
		Priority:    string(c.Priority),
		Position:    int64(c.Position),
	})
}

func (r *cardsRepo) GetCardByID(ctx context.Context, id string) (domain.Card, error) {
	row, err := r.q.GetCardByID(ctx, id)
	if err != nil {
		return domain.Card{}, mapNotFound(err)
	}
	return mapCard(row), nil
}

func (r *cardsRepo) ListCardsByBoard(ctx context.Context, boardID string) ([]domain.Card, error) {
	rows, err := r.q.ListCardsByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapCard(row))
	}
	return out, nil
}

func (r *cardsRepo) MaxCardPosition(ctx context.Context, listID string) (int, error) {
	n, err := r.q.MaxCardPosition(ctx, listID)
	return int(n), err
}

func (r *cardsRepo) UpdateCard(ctx context.Context, c domain.Card) error {
	return r.q.UpdateCard(ctx, gen.UpdateCardParams{
		Title:       c.Title,
		Description: mapOptionalString(c.Description),
		Status:      string(c.Status),
		Priority:    string(c.Priority),
		ID:          c.ID,
	})
}

func (r *cardsRepo) MoveCard(ctx context.Context, id, listID string, position int) error {
	return r.q.MoveCard(ctx, gen.MoveCardParams{ListID: listID, Position: int64(position), ID: id})
}

func (r *cardsRepo) AssignCard(ctx context.Context, id string, assigneeID *string) error {
	return r.q.AssignCard(ctx, gen.AssignCardParams{AssigneeID: mapOptionalString(assigneeID), ID: id})
}

func (r *cardsRepo) DeleteCard(ctx context.Context, id string) error {
	return r.q.DeleteCard(ctx, id)
}

func (r *cardsRepo) LocateCard(ctx context.Context, id string) (domain.Location, error) {
	row, err := r.q.LocateCard(ctx, id)
	if err != nil {
		return domain.Location{}, mapNotFound(err)
	}
	return domain.Location{WorkspaceID: row.WorkspaceID, BoardID: row.BoardID, ListID: row.ListID}, nil
}

func mapCard(row gen.Card) domain.Card {
	return domain.Card{
		ID:          row.ID,
		ListID:      row.ListID,
		Title:       row.Title,
		Description: mapNullStringPtr(row.Description),
		Status:      domain.CardStatus(row.Status),
		Priority:    domain.CardPriority(row.Priority),
		Position:    int(row.Position),
		AssigneeID:  mapNullStringPtr(row.AssigneeID),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// source: cards.sql

package gen

import (
	"context"
	"database/sql"
)

const createCard = `-- name: CreateCard :exec
INSERT INTO cards (id, list_id, title, description, status, priority, position)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateCardParams struct {
	ID          string
	ListID      string
	Title       string
	Description sql.NullString
	Status      string
	Priority    string
	Position    int64
}

func (q *Queries) CreateCard(ctx context.Context, arg CreateCardParams) error {
	_, err := q.db.ExecContext(ctx, createCard,
		arg.ID,
		arg.ListID,
		arg.Title,
		arg.Description,
		arg.Status,
		arg.Priority,
		arg.Position,
	)
	return err
}

const getCardByID = `-- name: GetCardByID :one
SELECT id, list_id, title, description, status, priority, position, assignee_id, created_at, updated_at
FROM cards
WHERE id = ?
`

func (q *Queries) GetCardByID(ctx context.Context, id string) (Card, error) {
	row := q.db.QueryRowContext(ctx, getCardByID, id)
	var i Card
	err := row.Scan(
		&i.ID,
		&i.ListID,
		&i.Title,
		&i.Description,
		&i.Status,
		&i.Priority,
		&i.Position,
		&i.AssigneeID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listCardsByBoard = `-- name: ListCardsByBoard :many
SELECT c.id, c.list_id, c.title, c.description, c.status, c.priority, c.position, c.assignee_id, c.created_at, c.updated_at
FROM cards c
JOIN lists l ON l.id = c.list_id
WHERE l.board_id = ?
ORDER BY l.position, l.id, c.position, c.id
`

func (q *Queries) ListCardsByBoard(ctx context.Context, boardID string) ([]Card, error) {
	rows, err := q.db.QueryContext(ctx, listCardsByBoard, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Card{}
	for rows.Next() {
		var i Card
		if err := rows.Scan(
			&i.ID,
			&i.ListID,
			&i.Title,
			&i.Description,
			&i.Status,
			&i.Priority,
			&i.Position,
			&i.AssigneeID,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const maxCardPosition = `-- name: MaxCardPosition :one
SELECT CAST(COALESCE(MAX(position), 0) AS INTEGER)
FROM cards
WHERE list_id = ?
`

func (q *Queries) MaxCardPosition(ctx context.Context, listID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, maxCardPosition, listID)
	var column_1 int64
	err := row.Scan(&column_1)
	return column_1, err
}

const updateCard = `-- name: UpdateCard :exec
UPDATE cards
SET title = ?, description = ?, status = ?, priority = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateCardParams struct {
	Title       string
	Description sql.NullString
	Status      string
	Priority    string
	ID          string
}

func (q *Queries) UpdateCard(ctx context.Context, arg UpdateCardParams) error {
	_, err := q.db.ExecContext(ctx, updateCard,
		arg.Title,
		arg.Description,
		arg.Status,
		arg.Priority,
		arg.ID,
	)
	return err
}

const moveCard = `-- name: MoveCard :exec
UPDATE cards
SET list_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type MoveCardParams struct {
	ListID   string
	Position int64
	ID       string
}

func (q *Queries) MoveCard(ctx context.Context, arg MoveCardParams) error {
	_, err := q.db.ExecContext(ctx, moveCard, arg.ListID, arg.Position, arg.ID)
	return err
}

const assignCard = `-- name: AssignCard :exec
UPDATE cards
SET assignee_id = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type AssignCardParams struct {
	AssigneeID sql.NullString
	ID         string
}

func (q *Queries) AssignCard(ctx context.Context, arg AssignCardParams) error {
	_, err := q.db.ExecContext(ctx, assignCard, arg.AssigneeID, arg.ID)
	return err
}

const deleteCard = `-- name: DeleteCard :exec
DELETE FROM cards
WHERE id = ?
`

func (q *Queries) DeleteCard(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteCard, id)
	return err
}

const locateCard = `-- name: LocateCard :one
SELECT l.id AS list_id, b.id AS board_id, b.workspace_id
FROM cards c
JOIN lists l ON l.id = c.list_id
JOIN boards b ON b.id = l.board_id
WHERE c.id = ?
`

type LocateCardRow struct {
	ListID      string
	BoardID     string
	WorkspaceID string
}

func (q *Queries) LocateCard(ctx context.Context, id string) (LocateCardRow, error) {
	row := q.db.QueryRowContext(ctx, locateCard, id)
	var i LocateCardRow
	err := row.Scan(&i.ListID, &i.BoardID, &i.WorkspaceID)
	return i, err
}

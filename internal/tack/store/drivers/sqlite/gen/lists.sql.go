// source: lists.sql

package gen

import (
	"context"
)

const createList = `-- name: CreateList :exec
INSERT INTO lists (id, board_id, name, position)
VALUES (?, ?, ?, ?)
`

type CreateListParams struct {
	ID       string
	BoardID  string
	Name     string
	Position int64
}

func (q *Queries) CreateList(ctx context.Context, arg CreateListParams) error {
	_, err := q.db.ExecContext(ctx, createList,
		arg.ID,
		arg.BoardID,
		arg.Name,
		arg.Position,
	)
	return err
}

const getListByID = `-- name: GetListByID :one
SELECT id, board_id, name, position, created_at, updated_at
FROM lists
WHERE id = ?
`

func (q *Queries) GetListByID(ctx context.Context, id string) (List, error) {
	row := q.db.QueryRowContext(ctx, getListByID, id)
	var i List
	err := row.Scan(
		&i.ID,
		&i.BoardID,
		&i.Name,
		&i.Position,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listListsByBoard = `-- name: ListListsByBoard :many
SELECT id, board_id, name, position, created_at, updated_at
FROM lists
WHERE board_id = ?
ORDER BY position, id
`

func (q *Queries) ListListsByBoard(ctx context.Context, boardID string) ([]List, error) {
	rows, err := q.db.QueryContext(ctx, listListsByBoard, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []List{}
	for rows.Next() {
		var i List
		if err := rows.Scan(
			&i.ID,
			&i.BoardID,
			&i.Name,
			&i.Position,
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

const maxListPosition = `-- name: MaxListPosition :one
SELECT CAST(COALESCE(MAX(position), 0) AS INTEGER)
FROM lists
WHERE board_id = ?
`

func (q *Queries) MaxListPosition(ctx context.Context, boardID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, maxListPosition, boardID)
	var column_1 int64
	err := row.Scan(&column_1)
	return column_1, err
}

const updateListPosition = `-- name: UpdateListPosition :exec
UPDATE lists
SET position = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateListPositionParams struct {
	Position int64
	ID       string
}

func (q *Queries) UpdateListPosition(ctx context.Context, arg UpdateListPositionParams) error {
	_, err := q.db.ExecContext(ctx, updateListPosition, arg.Position, arg.ID)
	return err
}

const locateList = `-- name: LocateList :one
SELECT l.id AS list_id, b.id AS board_id, b.workspace_id
FROM lists l
JOIN boards b ON b.id = l.board_id
WHERE l.id = ?
`

type LocateListRow struct {
	ListID      string
	BoardID     string
	WorkspaceID string
}

func (q *Queries) LocateList(ctx context.Context, id string) (LocateListRow, error) {
	row := q.db.QueryRowContext(ctx, locateList, id)
	var i LocateListRow
	err := row.Scan(&i.ListID, &i.BoardID, &i.WorkspaceID)
	return i, err
}

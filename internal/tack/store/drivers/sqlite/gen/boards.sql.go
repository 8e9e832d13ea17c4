// source: boards.sql

package gen

import (
	"context"
	"database/sql"
	"time"
)

const createBoard = `-- name: CreateBoard :exec
INSERT INTO boards (id, workspace_id, name, visibility)
VALUES (?, ?, ?, ?)
`

type CreateBoardParams struct {
	ID          string
	WorkspaceID string
	Name        string
	Visibility  string
}

func (q *Queries) CreateBoard(ctx context.Context, arg CreateBoardParams) error {
	_, err := q.db.ExecContext(ctx, createBoard,
		arg.ID,
		arg.WorkspaceID,
		arg.Name,
		arg.Visibility,
	)
	return err
}

const getBoardByID = `-- name: GetBoardByID :one
SELECT id, workspace_id, name, visibility, created_at, updated_at
FROM boards
WHERE id = ?
`

func (q *Queries) GetBoardByID(ctx context.Context, id string) (Board, error) {
	row := q.db.QueryRowContext(ctx, getBoardByID, id)
	var i Board
	err := row.Scan(
		&i.ID,
		&i.WorkspaceID,
		&i.Name,
		&i.Visibility,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listBoards = `-- name: ListBoards :many
SELECT id, workspace_id, name, visibility, created_at, updated_at
FROM boards
WHERE workspace_id = ?
ORDER BY id
`

func (q *Queries) ListBoards(ctx context.Context, workspaceID string) ([]Board, error) {
	rows, err := q.db.QueryContext(ctx, listBoards, workspaceID)
	if err != nil {
		return nil, err
	}
	return scanBoards(rows)
}

const listVisibleBoards = `-- name: ListVisibleBoards :many
SELECT b.id, b.workspace_id, b.name, b.visibility, b.created_at, b.updated_at
FROM boards b
WHERE b.workspace_id = ?
  AND (
    b.visibility = 'PUBLIC'
    OR EXISTS (
      SELECT 1 FROM board_members bm
      WHERE bm.board_id = b.id AND bm.user_id = ?
    )
  )
ORDER BY b.id
`

type ListVisibleBoardsParams struct {
	WorkspaceID string
	UserID      string
}

func (q *Queries) ListVisibleBoards(ctx context.Context, arg ListVisibleBoardsParams) ([]Board, error) {
	rows, err := q.db.QueryContext(ctx, listVisibleBoards, arg.WorkspaceID, arg.UserID)
	if err != nil {
		return nil, err
	}
	return scanBoards(rows)
}

func scanBoards(rows *sql.Rows) ([]Board, error) {
	defer rows.Close()
	items := []Board{}
	for rows.Next() {
		var i Board
		if err := rows.Scan(
			&i.ID,
			&i.WorkspaceID,
			&i.Name,
			&i.Visibility,
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

const updateBoard = `-- name: UpdateBoard :exec
UPDATE boards
SET name = ?, visibility = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateBoardParams struct {
	Name       string
	Visibility string
	ID         string
}

func (q *Queries) UpdateBoard(ctx context.Context, arg UpdateBoardParams) error {
	_, err := q.db.ExecContext(ctx, updateBoard, arg.Name, arg.Visibility, arg.ID)
	return err
}

const deleteBoard = `-- name: DeleteBoard :exec
DELETE FROM boards
WHERE id = ?
`

func (q *Queries) DeleteBoard(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteBoard, id)
	return err
}

const addBoardMember = `-- name: AddBoardMember :exec
INSERT INTO board_members (board_id, user_id)
VALUES (?, ?)
`

type AddBoardMemberParams struct {
	BoardID string
	UserID  string
}

func (q *Queries) AddBoardMember(ctx context.Context, arg AddBoardMemberParams) error {
	_, err := q.db.ExecContext(ctx, addBoardMember, arg.BoardID, arg.UserID)
	return err
}

const removeBoardMember = `-- name: RemoveBoardMember :execrows
DELETE FROM board_members
WHERE board_id = ? AND user_id = ?
`

type RemoveBoardMemberParams struct {
	BoardID string
	UserID  string
}

func (q *Queries) RemoveBoardMember(ctx context.Context, arg RemoveBoardMemberParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, removeBoardMember, arg.BoardID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countBoardMember = `-- name: CountBoardMember :one
SELECT COUNT(*)
FROM board_members
WHERE board_id = ? AND user_id = ?
`

type CountBoardMemberParams struct {
	BoardID string
	UserID  string
}

func (q *Queries) CountBoardMember(ctx context.Context, arg CountBoardMemberParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countBoardMember, arg.BoardID, arg.UserID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listBoardMembers = `-- name: ListBoardMembers :many
SELECT bm.board_id, bm.user_id, bm.created_at, u.name, u.email
FROM board_members bm
JOIN users u ON u.id = bm.user_id
WHERE bm.board_id = ?
ORDER BY bm.created_at, u.id
`

type ListBoardMembersRow struct {
	BoardID   string
	UserID    string
	CreatedAt time.Time
	Name      string
	Email     string
}

func (q *Queries) ListBoardMembers(ctx context.Context, boardID string) ([]ListBoardMembersRow, error) {
	rows, err := q.db.QueryContext(ctx, listBoardMembers, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListBoardMembersRow{}
	for rows.Next() {
		var i ListBoardMembersRow
		if err := rows.Scan(
			&i.BoardID,
			&i.UserID,
			&i.CreatedAt,
			&i.Name,
			&i.Email,
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

const deleteWorkspaceBoardMembersForUser = `-- name: DeleteWorkspaceBoardMembersForUser :exec
DELETE FROM board_members
WHERE user_id = ?
  AND board_id IN (SELECT id FROM boards WHERE workspace_id = ?)
`

type DeleteWorkspaceBoardMembersForUserParams struct {
	UserID      string
	WorkspaceID string
}

func (q *Queries) DeleteWorkspaceBoardMembersForUser(ctx context.Context, arg DeleteWorkspaceBoardMembersForUserParams) error {
	_, err := q.db.ExecContext(ctx, deleteWorkspaceBoardMembersForUser, arg.UserID, arg.WorkspaceID)
	return err
}

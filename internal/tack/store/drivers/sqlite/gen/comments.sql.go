// source: comments.sql

package gen

import (
	"context"
	"time"
)

const createComment = `-- name: CreateComment :exec
INSERT INTO comments (id, card_id, author_id, content)
VALUES (?, ?, ?, ?)
`

type CreateCommentParams struct {
	ID       string
	CardID   string
	AuthorID string
	Content  string
}

func (q *Queries) CreateComment(ctx context.Context, arg CreateCommentParams) error {
	_, err := q.db.ExecContext(ctx, createComment,
		arg.ID,
		arg.CardID,
		arg.AuthorID,
		arg.Content,
	)
	return err
}

const getCommentByID = `-- name: GetCommentByID :one
SELECT c.id, c.card_id, c.author_id, c.content, c.created_at, c.updated_at, u.name AS author_name
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.id = ?
`

type CommentWithAuthorRow struct {
	ID         string
	CardID     string
	AuthorID   string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	AuthorName string
}

func (q *Queries) GetCommentByID(ctx context.Context, id string) (CommentWithAuthorRow, error) {
	row := q.db.QueryRowContext(ctx, getCommentByID, id)
	var i CommentWithAuthorRow
	err := row.Scan(
		&i.ID,
		&i.CardID,
		&i.AuthorID,
		&i.Content,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.AuthorName,
	)
	return i, err
}

const listCommentsByCard = `-- name: ListCommentsByCard :many
SELECT c.id, c.card_id, c.author_id, c.content, c.created_at, c.updated_at, u.name AS author_name
FROM comments c
JOIN users u ON u.id = c.author_id
WHERE c.card_id = ?
ORDER BY c.id
`

func (q *Queries) ListCommentsByCard(ctx context.Context, cardID string) ([]CommentWithAuthorRow, error) {
	rows, err := q.db.QueryContext(ctx, listCommentsByCard, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CommentWithAuthorRow{}
	for rows.Next() {
		var i CommentWithAuthorRow
		if err := rows.Scan(
			&i.ID,
			&i.CardID,
			&i.AuthorID,
			&i.Content,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.AuthorName,
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

const updateCommentContent = `-- name: UpdateCommentContent :exec
UPDATE comments
SET content = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

type UpdateCommentContentParams struct {
	Content string
	ID      string
}

func (q *Queries) UpdateCommentContent(ctx context.Context, arg UpdateCommentContentParams) error {
	_, err := q.db.ExecContext(ctx, updateCommentContent, arg.Content, arg.ID)
	return err
}

const deleteComment = `-- name: DeleteComment :exec
DELETE FROM comments
WHERE id = ?
`

func (q *Queries) DeleteComment(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteComment, id)
	return err
}

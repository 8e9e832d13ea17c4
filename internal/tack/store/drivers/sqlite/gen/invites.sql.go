// source: invites.sql

package gen

import (
	"context"
	"time"
)

const createInvite = `-- name: CreateInvite :exec
INSERT INTO invites (id, workspace_id, email, role, token_hash, invited_by, expires_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateInviteParams struct {
	ID          string
	WorkspaceID string
	Email       string
	Role        string
	TokenHash   string
	InvitedBy   string
	ExpiresAt   time.Time
}

func (q *Queries) CreateInvite(ctx context.Context, arg CreateInviteParams) error {
	_, err := q.db.ExecContext(ctx, createInvite,
		arg.ID,
		arg.WorkspaceID,
		arg.Email,
		arg.Role,
		arg.TokenHash,
		arg.InvitedBy,
		arg.ExpiresAt,
	)
	return err
}

const getInviteByTokenHash = `-- name: GetInviteByTokenHash :one
SELECT id, workspace_id, email, role, token_hash, invited_by, expires_at, created_at
FROM invites
WHERE token_hash = ?
`

func (q *Queries) GetInviteByTokenHash(ctx context.Context, tokenHash string) (Invite, error) {
	row := q.db.QueryRowContext(ctx, getInviteByTokenHash, tokenHash)
	var i Invite
	err := row.Scan(
		&i.ID,
		&i.WorkspaceID,
		&i.Email,
		&i.Role,
		&i.TokenHash,
		&i.InvitedBy,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const getInviteByEmail = `-- name: GetInviteByEmail :one
SELECT id, workspace_id, email, role, token_hash, invited_by, expires_at, created_at
FROM invites
WHERE workspace_id = ? AND email = ?
`

type GetInviteByEmailParams struct {
	WorkspaceID string
	Email       string
}

func (q *Queries) GetInviteByEmail(ctx context.Context, arg GetInviteByEmailParams) (Invite, error) {
	row := q.db.QueryRowContext(ctx, getInviteByEmail, arg.WorkspaceID, arg.Email)
	var i Invite
	err := row.Scan(
		&i.ID,
		&i.WorkspaceID,
		&i.Email,
		&i.Role,
		&i.TokenHash,
		&i.InvitedBy,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const listActiveInvites = `-- name: ListActiveInvites :many
SELECT id, workspace_id, email, role, token_hash, invited_by, expires_at, created_at
FROM invites
WHERE workspace_id = ? AND expires_at > ?
ORDER BY id DESC
`

type ListActiveInvitesParams struct {
	WorkspaceID string
	ExpiresAt   time.Time
}

func (q *Queries) ListActiveInvites(ctx context.Context, arg ListActiveInvitesParams) ([]Invite, error) {
	rows, err := q.db.QueryContext(ctx, listActiveInvites, arg.WorkspaceID, arg.ExpiresAt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Invite{}
	for rows.Next() {
		var i Invite
		if err := rows.Scan(
			&i.ID,
			&i.WorkspaceID,
			&i.Email,
			&i.Role,
			&i.TokenHash,
			&i.InvitedBy,
			&i.ExpiresAt,
			&i.CreatedAt,
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

const deleteInvite = `-- name: DeleteInvite :exec
DELETE FROM invites
WHERE id = ?
`

func (q *Queries) DeleteInvite(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteInvite, id)
	return err
}

const deleteExpiredInvites = `-- name: DeleteExpiredInvites :execrows
DELETE FROM invites
WHERE expires_at < ?
`

func (q *Queries) DeleteExpiredInvites(ctx context.Context, expiresAt time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpiredInvites, expiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

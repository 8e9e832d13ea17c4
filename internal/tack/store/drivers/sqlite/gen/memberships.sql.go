// source: memberships.sql

package gen

import (
	"context"
	"time"
)

const createMembership = `-- name: CreateMembership :exec
INSERT INTO memberships (id, user_id, workspace_id, role)
VALUES (?, ?, ?, ?)
`

type CreateMembershipParams struct {
	ID          string
	UserID      string
	WorkspaceID string
	Role        string
}

func (q *Queries) CreateMembership(ctx context.Context, arg CreateMembershipParams) error {
	_, err := q.db.ExecContext(ctx, createMembership,
		arg.ID,
		arg.UserID,
		arg.WorkspaceID,
		arg.Role,
	)
	return err
}

const getMembership = `-- name: GetMembership :one
SELECT id, user_id, workspace_id, role, created_at
FROM memberships
WHERE user_id = ? AND workspace_id = ?
`

type GetMembershipParams struct {
	UserID      string
	WorkspaceID string
}

func (q *Queries) GetMembership(ctx context.Context, arg GetMembershipParams) (Membership, error) {
	row := q.db.QueryRowContext(ctx, getMembership, arg.UserID, arg.WorkspaceID)
	var i Membership
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.WorkspaceID,
		&i.Role,
		&i.CreatedAt,
	)
	return i, err
}

const getMembershipByID = `-- name: GetMembershipByID :one
SELECT id, user_id, workspace_id, role, created_at
FROM memberships
WHERE id = ?
`

func (q *Queries) GetMembershipByID(ctx context.Context, id string) (Membership, error) {
	row := q.db.QueryRowContext(ctx, getMembershipByID, id)
	var i Membership
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.WorkspaceID,
		&i.Role,
		&i.CreatedAt,
	)
	return i, err
}

const listMembershipsForUser = `-- name: ListMembershipsForUser :many
SELECT id, user_id, workspace_id, role, created_at
FROM memberships
WHERE user_id = ?
ORDER BY id
`

func (q *Queries) ListMembershipsForUser(ctx context.Context, userID string) ([]Membership, error) {
	rows, err := q.db.QueryContext(ctx, listMembershipsForUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Membership{}
	for rows.Next() {
		var i Membership
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.WorkspaceID,
			&i.Role,
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

const listMembers = `-- name: ListMembers :many
SELECT m.id, m.user_id, m.workspace_id, m.role, m.created_at, u.name, u.email
FROM memberships m
JOIN users u ON u.id = m.user_id
WHERE m.workspace_id = ?
ORDER BY m.id
`

type ListMembersRow struct {
	ID          string
	UserID      string
	WorkspaceID string
	Role        string
	CreatedAt   time.Time
	Name        string
	Email       string
}

func (q *Queries) ListMembers(ctx context.Context, workspaceID string) ([]ListMembersRow, error) {
	rows, err := q.db.QueryContext(ctx, listMembers, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListMembersRow{}
	for rows.Next() {
		var i ListMembersRow
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.WorkspaceID,
			&i.Role,
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

const updateMembershipRole = `-- name: UpdateMembershipRole :exec
UPDATE memberships
SET role = ?
WHERE id = ?
`

type UpdateMembershipRoleParams struct {
	Role string
	ID   string
}

func (q *Queries) UpdateMembershipRole(ctx context.Context, arg UpdateMembershipRoleParams) error {
	_, err := q.db.ExecContext(ctx, updateMembershipRole, arg.Role, arg.ID)
	return err
}

const deleteMembership = `-- name: DeleteMembership :exec
DELETE FROM memberships
WHERE id = ?
`

func (q *Queries) DeleteMembership(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteMembership, id)
	return err
}

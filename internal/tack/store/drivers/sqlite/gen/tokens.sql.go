// source: tokens.sql

package gen

import (
	"context"
	"time"
)

const createVerificationToken = `-- name: CreateVerificationToken :exec
INSERT INTO email_verification_tokens (id, user_id, code, expires_at)
VALUES (?, ?, ?, ?)
`

type CreateVerificationTokenParams struct {
	ID        string
	UserID    string
	Code      string
	ExpiresAt time.Time
}

func (q *Queries) CreateVerificationToken(ctx context.Context, arg CreateVerificationTokenParams) error {
	_, err := q.db.ExecContext(ctx, createVerificationToken,
		arg.ID,
		arg.UserID,
		arg.Code,
		arg.ExpiresAt,
	)
	return err
}

const getVerificationToken = `-- name: GetVerificationToken :one
SELECT id, user_id, code, expires_at, created_at
FROM email_verification_tokens
WHERE user_id = ? AND code = ?
ORDER BY id DESC
LIMIT 1
`

type GetVerificationTokenParams struct {
	UserID string
	Code   string
}

func (q *Queries) GetVerificationToken(ctx context.Context, arg GetVerificationTokenParams) (EmailVerificationToken, error) {
	row := q.db.QueryRowContext(ctx, getVerificationToken, arg.UserID, arg.Code)
	var i EmailVerificationToken
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Code,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const deleteVerificationTokensForUser = `-- name: DeleteVerificationTokensForUser :exec
DELETE FROM email_verification_tokens
WHERE user_id = ?
`

func (q *Queries) DeleteVerificationTokensForUser(ctx context.Context, userID string) error {
	_, err := q.db.ExecContext(ctx, deleteVerificationTokensForUser, userID)
	return err
}

const deleteExpiredVerificationTokens = `-- name: DeleteExpiredVerificationTokens :execrows
DELETE FROM email_verification_tokens
WHERE expires_at < ?
`

func (q *Queries) DeleteExpiredVerificationTokens(ctx context.Context, expiresAt time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpiredVerificationTokens, expiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const createResetToken = `-- name: CreateResetToken :exec
INSERT INTO password_reset_tokens (id, user_id, token_hash, expires_at)
VALUES (?, ?, ?, ?)
`

type CreateResetTokenParams struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
}

func (q *Queries) CreateResetToken(ctx context.Context, arg CreateResetTokenParams) error {
	_, err := q.db.ExecContext(ctx, createResetToken,
		arg.ID,
		arg.UserID,
		arg.TokenHash,
		arg.ExpiresAt,
	)
	return err
}

const getResetTokenByHash = `-- name: GetResetTokenByHash :one
SELECT id, user_id, token_hash, expires_at, created_at
FROM password_reset_tokens
WHERE token_hash = ?
`

func (q *Queries) GetResetTokenByHash(ctx context.Context, tokenHash string) (PasswordResetToken, error) {
	row := q.db.QueryRowContext(ctx, getResetTokenByHash, tokenHash)
	var i PasswordResetToken
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.TokenHash,
		&i.ExpiresAt,
		&i.CreatedAt,
	)
	return i, err
}

const deleteResetTokensForUser = `-- name: DeleteResetTokensForUser :exec
DELETE FROM password_reset_tokens
WHERE user_id = ?
`

func (q *Queries) DeleteResetTokensForUser(ctx context.Context, userID string) error {
	_, err := q.db.ExecContext(ctx, deleteResetTokensForUser, userID)
	return err
}

const deleteExpiredResetTokens = `-- name: DeleteExpiredResetTokens :execrows
DELETE FROM password_reset_tokens
WHERE expires_at < ?
`

func (q *Queries) DeleteExpiredResetTokens(ctx context.Context, expiresAt time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpiredResetTokens, expiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const revokeToken = `-- name: RevokeToken :execrows
INSERT INTO revoked_tokens (jti, expires_at)
VALUES (?, ?)
ON CONFLICT (jti) DO NOTHING
`

type RevokeTokenParams struct {
	Jti       string
	ExpiresAt time.Time
}

func (q *Queries) RevokeToken(ctx context.Context, arg RevokeTokenParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, revokeToken, arg.Jti, arg.ExpiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const countRevokedToken = `-- name: CountRevokedToken :one
SELECT COUNT(*)
FROM revoked_tokens
WHERE jti = ?
`

func (q *Queries) CountRevokedToken(ctx context.Context, jti string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countRevokedToken, jti)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteExpiredRevokedTokens = `-- name: DeleteExpiredRevokedTokens :execrows
DELETE FROM revoked_tokens
WHERE expires_at < ?
`

func (q *Queries) DeleteExpiredRevokedTokens(ctx context.Context, expiresAt time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteExpiredRevokedTokens, expiresAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

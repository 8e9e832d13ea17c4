package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type verificationTokensRepo struct {
	q *gen.Queries
}

func (r *verificationTokensRepo) CreateVerificationToken(ctx context.Context, t domain.VerificationToken) error {
	return r.q.CreateVerificationToken(ctx, gen.CreateVerificationTokenParams{
		ID:        t.ID,
		UserID:    t.UserID,
		Code:      t.Code,
		ExpiresAt: t.ExpiresAt.UTC(),
	})
}

func (r *verificationTokensRepo) GetVerificationToken(ctx context.Context, userID, code string) (domain.VerificationToken, error) {
	row, err := r.q.GetVerificationToken(ctx, gen.GetVerificationTokenParams{UserID: userID, Code: code})
	if err != nil {
		return domain.VerificationToken{}, mapNotFound(err)
	}
	return domain.VerificationToken{
		ID:        row.ID,
		UserID:    row.UserID,
		Code:      row.Code,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *verificationTokensRepo) DeleteVerificationTokensForUser(ctx context.Context, userID string) error {
	return r.q.DeleteVerificationTokensForUser(ctx, userID)
}

func (r *verificationTokensRepo) DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredVerificationTokens(ctx, now.UTC())
}

type resetTokensRepo struct {
	q *gen.Queries
}

func (r *resetTokensRepo) CreateResetToken(ctx context.Context, t domain.ResetToken) error {
	err := r.q.CreateResetToken(ctx, gen.CreateResetTokenParams{
		ID:        t.ID,
		UserID:    t.UserID,
		TokenHash: t.TokenHash,
		ExpiresAt: t.ExpiresAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *resetTokensRepo) GetResetTokenByHash(ctx context.Context, hash string) (domain.ResetToken, error) {
	row, err := r.q.GetResetTokenByHash(ctx, hash)
	if err != nil {
		return domain.ResetToken{}, mapNotFound(err)
	}
	return domain.ResetToken{
		ID:        row.ID,
		UserID:    row.UserID,
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *resetTokensRepo) DeleteResetTokensForUser(ctx context.Context, userID string) error {
	return r.q.DeleteResetTokensForUser(ctx, userID)
}

func (r *resetTokensRepo) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredResetTokens(ctx, now.UTC())
}

// revocationsRepo is the default refresh token denylist.
type revocationsRepo struct {
	q *gen.Queries
}

func (r *revocationsRepo) Revoke(ctx context.Context, jti string, expiresAt time.Time) (bool, error) {
	n, err := r.q.RevokeToken(ctx, gen.RevokeTokenParams{Jti: jti, ExpiresAt: expiresAt.UTC()})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *revocationsRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.q.CountRevokedToken(ctx, jti)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *revocationsRepo) DeleteExpiredRevocations(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredRevokedTokens(ctx, now.UTC())
}

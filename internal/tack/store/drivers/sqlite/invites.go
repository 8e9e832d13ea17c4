package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type invitesRepo struct {
	q *gen.Queries
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	err := r.q.CreateInvite(ctx, gen.CreateInviteParams{
		ID:          inv.ID,
		WorkspaceID: inv.WorkspaceID,
		Email:       inv.Email,
		Role:        string(inv.Role),
		TokenHash:   inv.TokenHash,
		InvitedBy:   inv.InvitedBy,
		ExpiresAt:   inv.ExpiresAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error) {
	row, err := r.q.GetInviteByTokenHash(ctx, hash)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) GetInviteByEmail(ctx context.Context, workspaceID, email string) (domain.Invite, error) {
	row, err := r.q.GetInviteByEmail(ctx, gen.GetInviteByEmailParams{WorkspaceID: workspaceID, Email: email})
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return mapInvite(row), nil
}

func (r *invitesRepo) ListActiveInvites(ctx context.Context, workspaceID string, now time.Time) ([]domain.Invite, error) {
	rows, err := r.q.ListActiveInvites(ctx, gen.ListActiveInvitesParams{WorkspaceID: workspaceID, ExpiresAt: now.UTC()})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Invite, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInvite(row))
	}
	return out, nil
}

func (r *invitesRepo) DeleteInvite(ctx context.Context, id string) error {
	return r.q.DeleteInvite(ctx, id)
}

func (r *invitesRepo) DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	return r.q.DeleteExpiredInvites(ctx, now.UTC())
}

func mapInvite(row gen.Invite) domain.Invite {
	return domain.Invite{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Email:       row.Email,
		Role:        domain.Role(row.Role),
		TokenHash:   row.TokenHash,
		InvitedBy:   row.InvitedBy,
		ExpiresAt:   row.ExpiresAt,
		CreatedAt:   row.CreatedAt,
	}
}

package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type membershipsRepo struct {
	q *gen.Queries
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	err := r.q.CreateMembership(ctx, gen.CreateMembershipParams{
		ID:          m.ID,
		UserID:      m.UserID,
		WorkspaceID: m.WorkspaceID,
		Role:        string(m.Role),
	})
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, userID, workspaceID string) (domain.Membership, error) {
	row, err := r.q.GetMembership(ctx, gen.GetMembershipParams{UserID: userID, WorkspaceID: workspaceID})
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return mapMembership(row), nil
}

func (r *membershipsRepo) GetMembershipByID(ctx context.Context, id string) (domain.Membership, error) {
	row, err := r.q.GetMembershipByID(ctx, id)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return mapMembership(row), nil
}

func (r *membershipsRepo) ListMembershipsForUser(ctx context.Context, userID string) ([]domain.Membership, error) {
	rows, err := r.q.ListMembershipsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapMembership(row))
	}
	return out, nil
}

func (r *membershipsRepo) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	rows, err := r.q.ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Member{
			Membership: domain.Membership{
				ID:          row.ID,
				UserID:      row.UserID,
				WorkspaceID: row.WorkspaceID,
				Role:        domain.Role(row.Role),
				CreatedAt:   row.CreatedAt,
			},
			Name:  row.Name,
			Email: row.Email,
		})
	}
	return out, nil
}

func (r *membershipsRepo) UpdateMembershipRole(ctx context.Context, id string, role domain.Role) error {
	err := r.q.UpdateMembershipRole(ctx, gen.UpdateMembershipRoleParams{Role: string(role), ID: id})
	return mapConstraint(err)
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, id string) error {
	return r.q.DeleteMembership(ctx, id)
}

func mapMembership(row gen.Membership) domain.Membership {
	return domain.Membership{
		ID:          row.ID,
		UserID:      row.UserID,
		WorkspaceID: row.WorkspaceID,
		Role:        domain.Role(row.Role),
		CreatedAt:   row.CreatedAt,
	}
}

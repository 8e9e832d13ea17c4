package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type workspacesRepo struct {
	q *gen.Queries
}

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	return r.q.CreateWorkspace(ctx, gen.CreateWorkspaceParams{ID: w.ID, Name: w.Name})
}

func (r *workspacesRepo) GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error) {
	row, err := r.q.GetWorkspaceByID(ctx, id)
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	return mapWorkspace(row), nil
}

func (r *workspacesRepo) ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.WorkspaceWithRole, error) {
	rows, err := r.q.ListWorkspacesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.WorkspaceWithRole, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.WorkspaceWithRole{
			Workspace: domain.Workspace{
				ID:        row.ID,
				Name:      row.Name,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Role: domain.Role(row.Role),
		})
	}
	return out, nil
}

func (r *workspacesRepo) UpdateWorkspaceName(ctx context.Context, id string, name string) error {
	return r.q.UpdateWorkspaceName(ctx, gen.UpdateWorkspaceNameParams{Name: name, ID: id})
}

func (r *workspacesRepo) DeleteWorkspace(ctx context.Context, id string) error {
	return r.q.DeleteWorkspace(ctx, id)
}

func mapWorkspace(row gen.Workspace) domain.Workspace {
	return domain.Workspace{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

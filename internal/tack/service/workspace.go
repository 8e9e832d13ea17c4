package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

type WorkspaceService struct {
	Store  store.Store
	Access *AccessResolver
}

// Create makes a workspace owned by the actor.
func (s *WorkspaceService) Create(ctx context.Context, actor domain.Actor, name string) (domain.WorkspaceWithRole, error) {
	now := time.Now().UTC()
	ws := domain.Workspace{
		ID:        idx.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Workspaces().CreateWorkspace(ctx, ws); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:          idx.New().String(),
			UserID:      actor.UserID,
			WorkspaceID: ws.ID,
			Role:        domain.RoleOwner,
			CreatedAt:   now,
		})
	})
	if err != nil {
		return domain.WorkspaceWithRole{}, err
	}

	slogx.FromContext(ctx).Info("workspace created", slog.String("workspace_id", ws.ID))
	return domain.WorkspaceWithRole{Workspace: ws, Role: domain.RoleOwner}, nil
}

func (s *WorkspaceService) ListForUser(ctx context.Context, actor domain.Actor) ([]domain.WorkspaceWithRole, error) {
	return s.Store.Workspaces().ListWorkspacesForUser(ctx, actor.UserID)
}

func (s *WorkspaceService) Get(ctx context.Context, actor domain.Actor, workspaceID string) (domain.WorkspaceWithRole, error) {
	m, err := s.Access.Authorize(ctx, actor, workspaceID)
	if err != nil {
		return domain.WorkspaceWithRole{}, err
	}
	ws, err := s.Store.Workspaces().GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return domain.WorkspaceWithRole{}, notFound(err, ErrWorkspaceNotFound)
	}
	return domain.WorkspaceWithRole{Workspace: ws, Role: m.Role}, nil
}

// Update renames a workspace. Managers only.
func (s *WorkspaceService) Update(ctx context.Context, actor domain.Actor, workspaceID, name string) (domain.WorkspaceWithRole, error) {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.Managers...); err != nil {
		return domain.WorkspaceWithRole{}, err
	}
	if err := s.Store.Workspaces().UpdateWorkspaceName(ctx, workspaceID, name); err != nil {
		return domain.WorkspaceWithRole{}, notFound(err, ErrWorkspaceNotFound)
	}
	return s.Get(ctx, actor, workspaceID)
}

// Delete removes the workspace and everything in it. Owner only.
func (s *WorkspaceService) Delete(ctx context.Context, actor domain.Actor, workspaceID string) error {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.RoleOwner); err != nil {
		return err
	}
	if err := s.Store.Workspaces().DeleteWorkspace(ctx, workspaceID); err != nil {
		return notFound(err, ErrWorkspaceNotFound)
	}
	slogx.FromContext(ctx).Info("workspace deleted", slog.String("workspace_id", workspaceID))
	return nil
}

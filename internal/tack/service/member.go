package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

type MemberService struct {
	Store  store.Store
	Access *AccessResolver
}

func (s *MemberService) List(ctx context.Context, actor domain.Actor, workspaceID string) ([]domain.Member, error) {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID); err != nil {
		return nil, err
	}
	return s.Store.Memberships().ListMembers(ctx, workspaceID)
}

// UpdateRole changes a member's role. The owner's role is fixed.
func (s *MemberService) UpdateRole(ctx context.Context, actor domain.Actor, workspaceID, membershipID string, role domain.Role) (domain.Membership, error) {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.Managers...); err != nil {
		return domain.Membership{}, err
	}
	if !role.Assignable() {
		return domain.Membership{}, ErrUnassignableRole
	}

	target, err := s.target(ctx, s.Store, workspaceID, membershipID)
	if err != nil {
		return domain.Membership{}, err
	}
	if target.Role == domain.RoleOwner {
		return domain.Membership{}, ErrOwnerRoleFixed
	}

	if err := s.Store.Memberships().UpdateMembershipRole(ctx, target.ID, role); err != nil {
		return domain.Membership{}, notFound(err, ErrMembershipNotFound)
	}

	slogx.FromContext(ctx).Info("member role changed",
		slog.String("workspace_id", workspaceID),
		slog.String("membership_id", target.ID),
		slog.String("from", string(target.Role)),
		slog.String("to", string(role)),
	)
	target.Role = role
	return target, nil
}

// Remove drops a member from the workspace along with their board grants.
// The owner cannot be removed.
func (s *MemberService) Remove(ctx context.Context, actor domain.Actor, workspaceID, membershipID string) error {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.Managers...); err != nil {
		return err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		target, err := s.target(ctx, tx, workspaceID, membershipID)
		if err != nil {
			return err
		}
		if target.Role == domain.RoleOwner {
			return ErrOwnerNotRemovable
		}
		if err := tx.BoardMembers().RemoveUserFromWorkspaceBoards(ctx, workspaceID, target.UserID); err != nil {
			return err
		}
		return notFound(tx.Memberships().DeleteMembership(ctx, target.ID), ErrMembershipNotFound)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("member removed",
		slog.String("workspace_id", workspaceID),
		slog.String("membership_id", membershipID),
	)
	return nil
}

// target loads a membership, treating one from another workspace as absent.
func (s *MemberService) target(ctx context.Context, q store.Store, workspaceID, membershipID string) (domain.Membership, error) {
	m, err := q.Memberships().GetMembershipByID(ctx, membershipID)
	if err != nil {
		return domain.Membership{}, notFound(err, ErrMembershipNotFound)
	}
	if m.WorkspaceID != workspaceID {
		return domain.Membership{}, ErrMembershipNotFound
	}
	return m, nil
}

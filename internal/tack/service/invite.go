package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/mail"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/cryptox"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

const DefaultInviteTTL = 7 * 24 * time.Hour

type InviteService struct {
	Store    store.Store
	Access   *AccessResolver
	Mailer   mail.Mailer
	Composer mail.Composer
	TTL      time.Duration
}

func (s *InviteService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultInviteTTL
}

// CreateInvite invites email into the workspace at role. The cleartext
// token is returned once and mailed; only its fingerprint is stored.
func (s *InviteService) CreateInvite(ctx context.Context, actor domain.Actor, workspaceID, email string, role domain.Role) (domain.IssuedInvite, error) {
	log := slogx.FromContext(ctx)

	// 1. Only managers invite.
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.Managers...); err != nil {
		return domain.IssuedInvite{}, err
	}

	// 2. Ownership is never handed out by invite.
	if !role.Assignable() {
		return domain.IssuedInvite{}, ErrUnassignableRole
	}
	email = domain.NormalizeEmail(email)

	token, err := cryptox.GenerateHexToken(cryptox.TokenSize256)
	if err != nil {
		return domain.IssuedInvite{}, err
	}

	now := time.Now().UTC()
	invite := domain.Invite{
		ID:          idx.New().String(),
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        role,
		TokenHash:   cryptox.FingerprintToken(token),
		InvitedBy:   actor.UserID,
		ExpiresAt:   now.Add(s.ttl()),
		CreatedAt:   now,
	}

	var workspace domain.Workspace
	var inviter domain.User

	// 3. Membership and pending invite checks commit with the insert. The
	// unique (workspace, email) index turns a lost race into a conflict.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		workspace, err = tx.Workspaces().GetWorkspaceByID(ctx, workspaceID)
		if err != nil {
			return notFound(err, ErrWorkspaceNotFound)
		}
		inviter, err = tx.Users().GetUserByID(ctx, actor.UserID)
		if err != nil {
			return err
		}

		invitee, err := tx.Users().GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			_, err := tx.Memberships().GetMembership(ctx, invitee.ID, workspaceID)
			if err == nil {
				return ErrAlreadyMember
			}
			if !errors.Is(err, store.ErrNotFound) {
				return err
			}
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		existing, err := tx.Invites().GetInviteByEmail(ctx, workspaceID, email)
		switch {
		case err == nil:
			if !existing.Expired(now) {
				return ErrActiveInvite
			}
			if err := tx.Invites().DeleteInvite(ctx, existing.ID); err != nil {
				return err
			}
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := tx.Invites().CreateInvite(ctx, invite); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrActiveInvite
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.IssuedInvite{}, err
	}

	log.Info("invite created",
		slog.String("workspace_id", workspaceID),
		slog.String("invite_id", invite.ID),
		slog.String("role", string(role)),
	)

	// 4. Deliver.
	msg := s.Composer.Invite(email, inviter.Name, workspace.Name, string(role), token, s.ttl())
	if s.Mailer != nil {
		if err := s.Mailer.Send(ctx, msg); err != nil {
			log.Error("failed to send invite email", slog.String("invite_id", invite.ID), slog.Any("error", err))
		}
	}

	return domain.IssuedInvite{Invite: invite, Token: token}, nil
}

// ListPendingInvites returns the workspace's unexpired invites.
func (s *InviteService) ListPendingInvites(ctx context.Context, actor domain.Actor, workspaceID string) ([]domain.Invite, error) {
	if _, err := s.Access.Authorize(ctx, actor, workspaceID, domain.Managers...); err != nil {
		return nil, err
	}
	return s.Store.Invites().ListActiveInvites(ctx, workspaceID, time.Now().UTC())
}

// VerifyInvite previews an invite for an invitee who may not be signed in.
func (s *InviteService) VerifyInvite(ctx context.Context, token string) (domain.InvitePreview, error) {
	invite, err := s.lookup(ctx, s.Store, token)
	if err != nil {
		return domain.InvitePreview{}, err
	}

	workspace, err := s.Store.Workspaces().GetWorkspaceByID(ctx, invite.WorkspaceID)
	if err != nil {
		return domain.InvitePreview{}, notFound(err, ErrInviteNotFound)
	}
	return domain.InvitePreview{Email: invite.Email, WorkspaceName: workspace.Name}, nil
}

// AcceptInvite joins the actor to the invite's workspace. The invite must
// have been addressed to the actor's email; it is consumed in the same
// transaction that creates the membership.
func (s *InviteService) AcceptInvite(ctx context.Context, actor domain.Actor, token string) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	var membership domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		invite, err := s.lookup(ctx, tx, token)
		if err != nil {
			return err
		}

		user, err := tx.Users().GetUserByID(ctx, actor.UserID)
		if err != nil {
			return notFound(err, ErrInviteEmail)
		}
		if domain.NormalizeEmail(user.Email) != invite.Email {
			log.Warn("invite presented by a different user",
				slog.String("invite_id", invite.ID),
				slog.String("user_id", user.ID),
			)
			return ErrInviteEmail
		}

		_, err = tx.Memberships().GetMembership(ctx, user.ID, invite.WorkspaceID)
		if err == nil {
			return ErrJoinedAlready
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		membership = domain.Membership{
			ID:          idx.New().String(),
			UserID:      user.ID,
			WorkspaceID: invite.WorkspaceID,
			Role:        invite.Role,
			CreatedAt:   time.Now().UTC(),
		}
		if err := tx.Memberships().CreateMembership(ctx, membership); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrJoinedAlready
			}
			return err
		}
		return tx.Invites().DeleteInvite(ctx, invite.ID)
	})
	if err != nil {
		return domain.Membership{}, err
	}

	log.Info("invite accepted",
		slog.String("workspace_id", membership.WorkspaceID),
		slog.String("membership_id", membership.ID),
	)
	return membership, nil
}

func (s *InviteService) lookup(ctx context.Context, q store.Store, token string) (domain.Invite, error) {
	invite, err := q.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		return domain.Invite{}, notFound(err, ErrInviteNotFound)
	}
	if invite.Expired(time.Now()) {
		return domain.Invite{}, ErrInviteNotFound
	}
	return invite, nil
}

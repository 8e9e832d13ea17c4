package service

import (
	"github.com/aussiebroadwan/tack/internal/tack/mail"
	"github.com/aussiebroadwan/tack/internal/tack/store"
)

// Deps are the collaborators shared by every service.
type Deps struct {
	Store    store.Store
	Tokens   *TokenService
	Mailer   mail.Mailer
	Composer mail.Composer

	RevealUnknownEmail bool
}

// Services bundles the service layer for the HTTP handlers.
type Services struct {
	Tokens     *TokenService
	Access     *AccessResolver
	Sessions   *SessionService
	Invites    *InviteService
	Workspaces *WorkspaceService
	Members    *MemberService
	Boards     *BoardService
	Lists      *ListService
	Cards      *CardService
	Comments   *CommentService
	Meta       MetaService
}

func New(d Deps) *Services {
	access := &AccessResolver{Store: d.Store}
	return &Services{
		Tokens: d.Tokens,
		Access: access,
		Sessions: &SessionService{
			Store:              d.Store,
			Tokens:             d.Tokens,
			Mailer:             d.Mailer,
			Composer:           d.Composer,
			RevealUnknownEmail: d.RevealUnknownEmail,
		},
		Invites: &InviteService{
			Store:    d.Store,
			Access:   access,
			Mailer:   d.Mailer,
			Composer: d.Composer,
		},
		Workspaces: &WorkspaceService{Store: d.Store, Access: access},
		Members:    &MemberService{Store: d.Store, Access: access},
		Boards:     &BoardService{Store: d.Store, Access: access},
		Lists:      &ListService{Store: d.Store, Access: access},
		Cards:      &CardService{Store: d.Store, Access: access},
		Comments:   &CommentService{Store: d.Store, Access: access},
	}
}

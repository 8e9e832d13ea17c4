package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// Repositories are exposed as methods so a transaction scoped Store hands out
// the same repositories bound to the transaction, and nested transactions are
// impossible to start by accident.
type Store interface {
	Users() Users
	Workspaces() Workspaces
	Memberships() Memberships
	Boards() Boards
	BoardMembers() BoardMembers
	Lists() Lists
	Cards() Cards
	Comments() Comments
	VerificationTokens() VerificationTokens
	ResetTokens() ResetTokens
	Invites() Invites
	Revocations() Revocations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing if fn returns nil and
	// rolling back otherwise. Inside fn only tx may be used: the driver may
	// hold a single connection.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects a normalized address.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	MarkEmailVerified(ctx context.Context, userID string) error
}

type Workspaces interface {
	CreateWorkspace(ctx context.Context, w domain.Workspace) error
	GetWorkspaceByID(ctx context.Context, id string) (domain.Workspace, error)

	// ListWorkspacesForUser returns every workspace the user belongs to,
	// oldest first, with their role in it.
	ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.WorkspaceWithRole, error)

	UpdateWorkspaceName(ctx context.Context, id string, name string) error

	// DeleteWorkspace cascades to memberships, boards and invites.
	DeleteWorkspace(ctx context.Context, id string) error
}

type Memberships interface {
	// CreateMembership returns ErrAlreadyExists for a duplicate
	// (user, workspace) pair or a second OWNER.
	CreateMembership(ctx context.Context, m domain.Membership) error

	GetMembership(ctx context.Context, userID, workspaceID string) (domain.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (domain.Membership, error)

	// ListMembershipsForUser backs the membership claims of access tokens.
	ListMembershipsForUser(ctx context.Context, userID string) ([]domain.Membership, error)

	ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)

	UpdateMembershipRole(ctx context.Context, id string, role domain.Role) error
	DeleteMembership(ctx context.Context, id string) error
}

type Boards interface {
	CreateBoard(ctx context.Context, b domain.Board) error
	GetBoardByID(ctx context.Context, id string) (domain.Board, error)

	// ListBoards returns every board in the workspace.
	ListBoards(ctx context.Context, workspaceID string) ([]domain.Board, error)

	// ListVisibleBoards returns the PUBLIC boards plus the PRIVATE boards
	// userID is a board member of.
	ListVisibleBoards(ctx context.Context, workspaceID, userID string) ([]domain.Board, error)

	UpdateBoard(ctx context.Context, id string, name string, visibility domain.Visibility) error

	// DeleteBoard cascades to lists, cards and board members.
	DeleteBoard(ctx context.Context, id string) error
}

type BoardMembers interface {
	// AddBoardMember returns ErrAlreadyExists for a duplicate.
	AddBoardMember(ctx context.Context, boardID, userID string) error

	// RemoveBoardMember returns ErrNotFound when no row was removed.
	RemoveBoardMember(ctx context.Context, boardID, userID string) error

	IsBoardMember(ctx context.Context, boardID, userID string) (bool, error)
	ListBoardMembers(ctx context.Context, boardID string) ([]domain.BoardMember, error)

	// RemoveUserFromWorkspaceBoards drops every board grant the user holds
	// within the workspace.
	RemoveUserFromWorkspaceBoards(ctx context.Context, workspaceID, userID string) error
}

type Lists interface {
	CreateList(ctx context.Context, l domain.List) error
	GetListByID(ctx context.Context, id string) (domain.List, error)
	ListListsByBoard(ctx context.Context, boardID string) ([]domain.List, error)

	// MaxListPosition returns 0 for a board with no lists.
	MaxListPosition(ctx context.Context, boardID string) (int, error)

	UpdateListPosition(ctx context.Context, id string, position int) error

	// LocateList resolves list → board → workspace in one query.
	LocateList(ctx context.Context, id string) (domain.Location, error)
}

type Cards interface {
	CreateCard(ctx context.Context, c domain.Card) error
	GetCardByID(ctx context.Context, id string) (domain.Card, error)

	// ListCardsByBoard returns every card on the board ordered by list then
	// position.
	ListCardsByBoard(ctx context.Context, boardID string) ([]domain.Card, error)

	// MaxCardPosition returns 0 for an empty list.
	MaxCardPosition(ctx context.Context, listID string) (int, error)

	// UpdateCard writes title, description, status and priority.
	UpdateCard(ctx context.Context, c domain.Card) error

	MoveCard(ctx context.Context, id, listID string, position int) error
	AssignCard(ctx context.Context, id string, assigneeID *string) error
	DeleteCard(ctx context.Context, id string) error

	// LocateCard resolves card → list → board → workspace in one query.
	LocateCard(ctx context.Context, id string) (domain.Location, error)
}

type Comments interface {
	CreateComment(ctx context.Context, c domain.Comment) error
	GetCommentByID(ctx context.Context, id string) (domain.Comment, error)

	// ListCommentsByCard returns comments oldest first, with author names.
	ListCommentsByCard(ctx context.Context, cardID string) ([]domain.Comment, error)

	UpdateCommentContent(ctx context.Context, id string, content string) error
	DeleteComment(ctx context.Context, id string) error
}

type VerificationTokens interface {
	CreateVerificationToken(ctx context.Context, t domain.VerificationToken) error

	// GetVerificationToken matches an upper case code for a user. Expiry is
	// the caller's concern.
	GetVerificationToken(ctx context.Context, userID, code string) (domain.VerificationToken, error)

	DeleteVerificationTokensForUser(ctx context.Context, userID string) error
	DeleteExpiredVerificationTokens(ctx context.Context, now time.Time) (int64, error)
}

type ResetTokens interface {
	CreateResetToken(ctx context.Context, t domain.ResetToken) error
	GetResetTokenByHash(ctx context.Context, hash string) (domain.ResetToken, error)
	DeleteResetTokensForUser(ctx context.Context, userID string) error
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

type Invites interface {
	// CreateInvite returns ErrAlreadyExists when a row for the
	// (workspace, email) pair is present.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByTokenHash(ctx context.Context, hash string) (domain.Invite, error)
	GetInviteByEmail(ctx context.Context, workspaceID, email string) (domain.Invite, error)

	// ListActiveInvites returns unexpired invites, newest first.
	ListActiveInvites(ctx context.Context, workspaceID string, now time.Time) ([]domain.Invite, error)

	DeleteInvite(ctx context.Context, id string) error
	DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error)
}

// Revocations is a refresh token denylist keyed by jti. Entries only need
// to outlive the token they revoke.
type Revocations interface {
	// Revoke reports false when the jti was already revoked. Concurrent
	// callers with the same jti see true at most once.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) (bool, error)
	IsRevoked(ctx context.Context, jti string) (bool, error)
	DeleteExpiredRevocations(ctx context.Context, now time.Time) (int64, error)
}

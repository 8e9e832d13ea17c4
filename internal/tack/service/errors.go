package service

import (
	"errors"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
)

// Tokens.
var (
	ErrTokenExpired   = domain.Unauthorized("Token has expired")
	ErrTokenNotActive = domain.Unauthorized("Token not active yet")
	ErrTokenInvalid   = domain.Unauthorized("Invalid token")
	ErrTokenRevoked   = domain.Unauthorized("Token has been revoked")
)

// Sessions.
var (
	ErrEmailTaken           = domain.Conflict("An account with this email already exists.")
	ErrInvalidCredentials   = domain.Unauthorized("Invalid credentials.")
	ErrRefreshTokenRequired = domain.Unauthorized("Refresh token is required.")
	ErrSessionUserGone      = domain.Unauthorized("User not found.")
	ErrUserNotFound         = domain.NotFound("User not found.")
	ErrUnknownEmail         = domain.NotFound("User with that email does not exist.")
	ErrInvalidResetToken    = domain.Unauthorized("Invalid or expired password reset token.")
	ErrInvalidOTP           = domain.Unauthorized("Invalid or expired verification code.")
	ErrAlreadyVerified      = domain.Conflict("User email is already verified.")
	ErrIncorrectPassword    = domain.Unauthorized("Incorrect current password.")
)

// Access control.
var (
	ErrNotWorkspaceMember = domain.Forbidden("You do not have access to this workspace.")
	ErrInsufficientRole   = domain.Forbidden("You don't have the required permissions to perform this action.")
	ErrPrivateBoard       = domain.Forbidden("You don't have access to this private board.")
	ErrWorkspaceNotFound  = domain.NotFound("Workspace not found.")
	ErrBoardNotFound      = domain.NotFound("Board not found.")
	ErrListNotFound       = domain.NotFound("List not found.")
	ErrCardNotFound       = domain.NotFound("Card not found.")
	ErrCommentNotFound    = domain.NotFound("Comment not found.")
)

// Invites.
var (
	ErrAlreadyMember    = domain.Conflict("This user is already a member of the workspace.")
	ErrActiveInvite     = domain.Conflict("An active invitation for this email already exists.")
	ErrInviteNotFound   = domain.NotFound("Invalid or expired invitation link.")
	ErrInviteEmail      = domain.Forbidden("This invitation is intended for a different email address.")
	ErrJoinedAlready    = domain.Conflict("You are already a member of this workspace.")
	ErrUnassignableRole = domain.BadRequest("Role must be ADMIN or MEMBER.")
)

// Members.
var (
	ErrMembershipNotFound = domain.NotFound("Membership not found.")
	ErrOwnerRoleFixed     = domain.Forbidden("The workspace owner role cannot be changed.")
	ErrOwnerNotRemovable  = domain.Forbidden("The workspace owner cannot be removed.")
)

// Boards, lists, cards and comments.
var (
	ErrPublicBoardMembers  = domain.Forbidden("This board is public; all workspace members have access.")
	ErrBoardMemberOutsider = domain.Forbidden("Cannot add a user who is not a member of the workspace.")
	ErrBoardMemberExists   = domain.Conflict("This user is already a member of the board.")
	ErrBoardMemberMissing  = domain.NotFound("This user is not a member of the board.")
	ErrForeignLists        = domain.BadRequest("One or more lists are invalid or do not belong to this board.")
	ErrForeignCards        = domain.BadRequest("One or more cards are invalid or do not belong to this board.")
	ErrAssigneeOutsider    = domain.BadRequest("Assignee is not a member of this workspace.")
	ErrAssigneeNoAccess    = domain.BadRequest("Assignee does not have access to this private board.")
	ErrCommentNotAuthor    = domain.Forbidden("You can only modify your own comments.")
)

// notFound swaps store.ErrNotFound for a domain error and passes anything
// else through.
func notFound(err error, replacement *domain.Error) error {
	if errors.Is(err, store.ErrNotFound) {
		return replacement
	}
	return err
}

package tacksdk

import (
	"encoding/json"
	"time"
)

// ============================================================================
// Envelope
// ============================================================================

// Envelope is the wrapper around every JSON body the API returns.
type Envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty" swaggertype:"object"`
	Errors     []FieldError    `json:"errors,omitempty"`
}

// FieldError names one field that failed validation.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest creates an unverified account and mails a verification code.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// LoginRequest exchanges credentials for a token pair.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the access token, or RequiresVerification when the
// account still has to confirm its email. A fresh code has been mailed in
// that case.
type LoginResponse struct {
	AccessToken          string `json:"accessToken,omitempty"`
	Email                string `json:"email,omitempty"`
	RequiresVerification bool   `json:"requiresVerification,omitempty"`
}

// AuthResponse is returned by verify-email and refresh. The refresh token
// travels in the refreshToken cookie.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// RefreshRequest is the body fallback for clients that cannot hold cookies.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// EmailRequest is the body of forgot-password and send-verification.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required,len=64,hexadecimal"`
	Password string `json:"password" validate:"required,strongpassword"`
}

// VerifyEmailRequest carries the emailed code in Token.
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required,otp"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strongpassword"`
}

// User is the public profile of an account.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ============================================================================
// Workspaces and members
// ============================================================================

type WorkspaceRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
}

// Workspace is a workspace as seen by the caller, with the caller's role.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Membership struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	WorkspaceID string    `json:"workspaceId"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Member struct {
	Membership
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN MEMBER"`
}

// ============================================================================
// Invites
// ============================================================================

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=ADMIN MEMBER"`
}

type Invite struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	InvitedBy   string    `json:"invitedBy"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IssuedInvite is returned once, at creation, and is the only place the raw
// token appears besides the invite email.
type IssuedInvite struct {
	Invite
	Token string `json:"token"`
}

type InvitePreview struct {
	Email         string `json:"email"`
	WorkspaceName string `json:"workspaceName"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required,len=64,hexadecimal"`
}

// ============================================================================
// Boards and lists
// ============================================================================

type CreateBoardRequest struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Visibility string `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

// UpdateBoardRequest changes only the fields that are set.
type UpdateBoardRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Visibility *string `json:"visibility,omitempty" validate:"omitempty,oneof=PUBLIC PRIVATE"`
}

type BoardMemberRequest struct {
	UserID string `json:"userId" validate:"required,ulid"`
}

type Board struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Name        string    `json:"name"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BoardDetail is a board with its lists in position order, each carrying its
// cards in position order.
type BoardDetail struct {
	Board
	Lists []ListWithCards `json:"lists"`
}

type BoardMember struct {
	BoardID   string    `json:"boardId"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateListRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type ListPosition struct {
	ID       string `json:"id" validate:"required,ulid"`
	Position int    `json:"position" validate:"gte=0"`
}

type ReorderListsRequest struct {
	Lists []ListPosition `json:"lists" validate:"required,min=1,dive"`
}

type List struct {
	ID        string    `json:"id"`
	BoardID   string    `json:"boardId"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListWithCards struct {
	List
	Cards []Card `json:"cards"`
}

// ============================================================================
// Cards and comments
// ============================================================================

type CreateCardRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

// UpdateCardRequest changes only the fields that are set.
type UpdateCardRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=TO_DO IN_PROGRESS IN_REVIEW DONE"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

type CardPosition struct {
	ID       string `json:"id" validate:"required,ulid"`
	ListID   string `json:"listId" validate:"required,ulid"`
	Position int    `json:"position" validate:"gte=0"`
}

type ReorderCardsRequest struct {
	Cards []CardPosition `json:"cards" validate:"required,min=1,dive"`
}

// AssignCardRequest sets the assignee, or clears it when AssigneeID is nil.
type AssignCardRequest struct {
	AssigneeID *string `json:"assigneeId" validate:"omitempty,ulid"`
}

type Card struct {
	ID          string    `json:"id"`
	ListID      string    `json:"listId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Position    int       `json:"position"`
	AssigneeID  *string   `json:"assigneeId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type Comment struct {
	ID         string    `json:"id"`
	CardID     string    `json:"cardId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ============================================================================
// Meta and health
// ============================================================================

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Enumerations struct {
	Roles             []Option `json:"roles"`
	CardStatuses      []Option `json:"cardStatuses"`
	CardPriorities    []Option `json:"cardPriorities"`
	BoardVisibilities []Option `json:"boardVisibilities"`
}

// HealthResponse is returned by /livez and /readyz. Checks is only set on
// readiness.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

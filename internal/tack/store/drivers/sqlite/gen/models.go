package gen

import (
	"database/sql"
	"time"
)

type Board struct {
	ID          string
	WorkspaceID string
	Name        string
	Visibility  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type BoardMember struct {
	BoardID   string
	UserID    string
	CreatedAt time.Time
}

type Card struct {
	ID          string
	ListID      string
	Title       string
	Description sql.NullString
	Status      string
	Priority    string
	Position    int64
	AssigneeID  sql.NullString
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Comment struct {
	ID        string
	CardID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmailVerificationToken struct {
	ID        string
	UserID    string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Invite struct {
	ID          string
	WorkspaceID string
	Email       string
	Role        string
	TokenHash   string
	InvitedBy   string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

type List struct {
	ID        string
	BoardID   string
	Name      string
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Membership struct {
	ID          string
	UserID      string
	WorkspaceID string
	Role        string
	CreatedAt   time.Time
}

type PasswordResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type RevokedToken struct {
	Jti       string
	ExpiresAt time.Time
}

type User struct {
	ID            string
	Email         string
	Name          string
	PasswordHash  string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Workspace struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

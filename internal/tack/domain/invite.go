package domain

import "time"

type Invite struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	TokenHash   string    `json:"-"` // base64url SHA-256 of the token
	InvitedBy   string    `json:"invitedBy"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i Invite) Expired(now time.Time) bool { return now.After(i.ExpiresAt) }

// IssuedInvite is returned once, at creation, with the cleartext token.
type IssuedInvite struct {
	Invite
	Token string `json:"token"`
}

// InvitePreview is what an invite reveals before the invitee signs in.
type InvitePreview struct {
	Email         string `json:"email"`
	WorkspaceName string `json:"workspaceName"`
}

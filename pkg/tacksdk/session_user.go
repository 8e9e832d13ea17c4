package tacksdk

import (
	"context"
	"net/http"
)

// Me returns the caller's profile.
func (s *Session) Me(ctx context.Context) (*User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the caller's password.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/user/change-password", ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// AcceptInvite joins the workspace the invite was issued for. The invite
// must have been sent to the caller's email.
func (s *Session) AcceptInvite(ctx context.Context, token string) (*Membership, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/invites/accept", AcceptInviteRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var m Membership
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

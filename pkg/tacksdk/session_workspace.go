package tacksdk

import (
	"context"
	"net/http"
)

func workspacePath(workspaceID string) string {
	return "/api/workspaces/" + workspaceID
}

// CreateWorkspace creates a workspace owned by the caller.
func (s *Session) CreateWorkspace(ctx context.Context, name string) (*Workspace, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/workspaces", WorkspaceRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var ws Workspace
	if err := decodeJSON(resp, &ws, http.StatusCreated); err != nil {
		return nil, err
	}
	return &ws, nil
}

// ListWorkspaces returns every workspace the caller belongs to.
func (s *Session) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/workspaces", nil)
	if err != nil {
		return nil, err
	}

	var out []Workspace
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetWorkspace(ctx context.Context, workspaceID string) (*Workspace, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, workspacePath(workspaceID), nil)
	if err != nil {
		return nil, err
	}

	var ws Workspace
	if err := decodeJSON(resp, &ws, http.StatusOK); err != nil {
		return nil, err
	}
	return &ws, nil
}

func (s *Session) RenameWorkspace(ctx context.Context, workspaceID, name string) (*Workspace, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, workspacePath(workspaceID), WorkspaceRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var ws Workspace
	if err := decodeJSON(resp, &ws, http.StatusOK); err != nil {
		return nil, err
	}
	return &ws, nil
}

// DeleteWorkspace removes the workspace and everything in it. Owner only.
func (s *Session) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, workspacePath(workspaceID), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

func (s *Session) ListMembers(ctx context.Context, workspaceID string) ([]Member, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, workspacePath(workspaceID)+"/members", nil)
	if err != nil {
		return nil, err
	}

	var out []Member
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) UpdateMemberRole(ctx context.Context, workspaceID, membershipID, role string) (*Membership, error) {
	path := workspacePath(workspaceID) + "/members/" + membershipID
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, path, UpdateRoleRequest{Role: role})
	if err != nil {
		return nil, err
	}

	var m Membership
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Session) RemoveMember(ctx context.Context, workspaceID, membershipID string) error {
	path := workspacePath(workspaceID) + "/members/" + membershipID
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Invite sends an invitation to email with the given role.
func (s *Session) Invite(ctx context.Context, workspaceID, email, role string) (*IssuedInvite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, workspacePath(workspaceID)+"/members/invite", InviteRequest{
		Email: email,
		Role:  role,
	})
	if err != nil {
		return nil, err
	}

	var inv IssuedInvite
	if err := decodeJSON(resp, &inv, http.StatusCreated); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *Session) ListInvites(ctx context.Context, workspaceID string) ([]Invite, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, workspacePath(workspaceID)+"/members/invites", nil)
	if err != nil {
		return nil, err
	}

	var out []Invite
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

package tacksdk

import (
	"context"
	"net/http"
)

func boardPath(workspaceID, boardID string) string {
	return workspacePath(workspaceID) + "/boards/" + boardID
}

// CreateBoard creates a board with the four default lists. An empty
// visibility means PUBLIC.
func (s *Session) CreateBoard(ctx context.Context, workspaceID string, req CreateBoardRequest) (*BoardDetail, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, workspacePath(workspaceID)+"/boards", req)
	if err != nil {
		return nil, err
	}

	var b BoardDetail
	if err := decodeJSON(resp, &b, http.StatusCreated); err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBoards returns the boards of a workspace the caller can see.
func (s *Session) ListBoards(ctx context.Context, workspaceID string) ([]Board, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, workspacePath(workspaceID)+"/boards", nil)
	if err != nil {
		return nil, err
	}

	var out []Board
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetBoard(ctx context.Context, workspaceID, boardID string) (*BoardDetail, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, boardPath(workspaceID, boardID), nil)
	if err != nil {
		return nil, err
	}

	var b BoardDetail
	if err := decodeJSON(resp, &b, http.StatusOK); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Session) UpdateBoard(ctx context.Context, workspaceID, boardID string, req UpdateBoardRequest) (*Board, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, boardPath(workspaceID, boardID), req)
	if err != nil {
		return nil, err
	}

	var b Board
	if err := decodeJSON(resp, &b, http.StatusOK); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Session) DeleteBoard(ctx context.Context, workspaceID, boardID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, boardPath(workspaceID, boardID), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

func (s *Session) ListBoardMembers(ctx context.Context, workspaceID, boardID string) ([]BoardMember, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, boardPath(workspaceID, boardID)+"/members", nil)
	if err != nil {
		return nil, err
	}

	var out []BoardMember
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// AddBoardMember grants a workspace member access to a private board.
func (s *Session) AddBoardMember(ctx context.Context, workspaceID, boardID, userID string) error {
	path := boardPath(workspaceID, boardID) + "/members"
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, BoardMemberRequest{UserID: userID})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusCreated)
}

func (s *Session) RemoveBoardMember(ctx context.Context, workspaceID, boardID, userID string) error {
	path := boardPath(workspaceID, boardID) + "/members/" + userID
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// CreateList appends a list after the board's last one.
func (s *Session) CreateList(ctx context.Context, workspaceID, boardID, name string) (*List, error) {
	path := boardPath(workspaceID, boardID) + "/lists"
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, CreateListRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var l List
	if err := decodeJSON(resp, &l, http.StatusCreated); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Session) ReorderLists(ctx context.Context, workspaceID, boardID string, lists []ListPosition) error {
	path := boardPath(workspaceID, boardID) + "/lists/reorder"
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, path, ReorderListsRequest{Lists: lists})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

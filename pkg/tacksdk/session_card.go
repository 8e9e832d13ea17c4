package tacksdk

import (
	"context"
	"net/http"
)

func cardPath(cardID string) string {
	return "/api/cards/" + cardID
}

// CreateCard appends a card to the end of a list.
func (s *Session) CreateCard(ctx context.Context, listID string, req CreateCardRequest) (*Card, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/lists/"+listID+"/cards", req)
	if err != nil {
		return nil, err
	}

	var c Card
	if err := decodeJSON(resp, &c, http.StatusCreated); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) GetCard(ctx context.Context, cardID string) (*Card, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, cardPath(cardID), nil)
	if err != nil {
		return nil, err
	}

	var c Card
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) UpdateCard(ctx context.Context, cardID string, req UpdateCardRequest) (*Card, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, cardPath(cardID), req)
	if err != nil {
		return nil, err
	}

	var c Card
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) DeleteCard(ctx context.Context, cardID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, cardPath(cardID), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ReorderCards moves cards between lists of one board and sets their
// positions in a single transaction.
func (s *Session) ReorderCards(ctx context.Context, cards []CardPosition) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/api/cards/reorder", ReorderCardsRequest{Cards: cards})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// AssignCard sets the assignee, or clears it when assigneeID is nil.
func (s *Session) AssignCard(ctx context.Context, cardID string, assigneeID *string) (*Card, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, cardPath(cardID)+"/assign", AssignCardRequest{AssigneeID: assigneeID})
	if err != nil {
		return nil, err
	}

	var c Card
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) AddComment(ctx context.Context, cardID, content string) (*Comment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, cardPath(cardID)+"/comments", CommentRequest{Content: content})
	if err != nil {
		return nil, err
	}

	var c Comment
	if err := decodeJSON(resp, &c, http.StatusCreated); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) ListComments(ctx context.Context, cardID string) ([]Comment, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, cardPath(cardID)+"/comments", nil)
	if err != nil {
		return nil, err
	}

	var out []Comment
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) EditComment(ctx context.Context, cardID, commentID, content string) (*Comment, error) {
	path := cardPath(cardID) + "/comments/" + commentID
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, path, CommentRequest{Content: content})
	if err != nil {
		return nil, err
	}

	var c Comment
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) DeleteComment(ctx context.Context, cardID, commentID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, cardPath(cardID)+"/comments/"+commentID, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/idx"
)

type CommentService struct {
	Store  store.Store
	Access *AccessResolver
}

func (s *CommentService) Create(ctx context.Context, actor domain.Actor, cardID, content string) (domain.Comment, error) {
	if _, err := s.Access.AuthorizeCard(ctx, actor, cardID); err != nil {
		return domain.Comment{}, err
	}

	now := time.Now().UTC()
	c := domain.Comment{
		ID:        idx.New().String(),
		CardID:    cardID,
		AuthorID:  actor.UserID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Comments().CreateComment(ctx, c); err != nil {
		return domain.Comment{}, err
	}
	return s.load(ctx, cardID, c.ID)
}

func (s *CommentService) List(ctx context.Context, actor domain.Actor, cardID string) ([]domain.Comment, error) {
	if _, err := s.Access.AuthorizeCard(ctx, actor, cardID); err != nil {
		return nil, err
	}
	return s.Store.Comments().ListCommentsByCard(ctx, cardID)
}

// Update edits a comment. Only its author may.
func (s *CommentService) Update(ctx context.Context, actor domain.Actor, cardID, commentID, content string) (domain.Comment, error) {
	if _, err := s.Access.AuthorizeCard(ctx, actor, cardID); err != nil {
		return domain.Comment{}, err
	}

	c, err := s.load(ctx, cardID, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if c.AuthorID != actor.UserID {
		return domain.Comment{}, ErrCommentNotAuthor
	}

	if err := s.Store.Comments().UpdateCommentContent(ctx, commentID, content); err != nil {
		return domain.Comment{}, err
	}
	return s.load(ctx, cardID, commentID)
}

// Delete removes a comment. Authors may delete their own; workspace
// managers may delete any.
func (s *CommentService) Delete(ctx context.Context, actor domain.Actor, cardID, commentID string) error {
	access, err := s.Access.AuthorizeCard(ctx, actor, cardID)
	if err != nil {
		return err
	}

	c, err := s.load(ctx, cardID, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != actor.UserID && !access.Membership.Role.IsManager() {
		return ErrCommentNotAuthor
	}
	return notFound(s.Store.Comments().DeleteComment(ctx, commentID), ErrCommentNotFound)
}

// load fetches a comment and checks it hangs off cardID.
func (s *CommentService) load(ctx context.Context, cardID, commentID string) (domain.Comment, error) {
	c, err := s.Store.Comments().GetCommentByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, notFound(err, ErrCommentNotFound)
	}
	if c.CardID != cardID {
		return domain.Comment{}, ErrCommentNotFound
	}
	return c, nil
}

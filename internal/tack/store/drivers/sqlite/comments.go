package sqlite

import (
	"context"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store/drivers/sqlite/gen"
)

type commentsRepo struct {
	q *gen.Queries
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	return r.q.CreateComment(ctx, gen.CreateCommentParams{
		ID:       c.ID,
		CardID:   c.CardID,
		AuthorID: c.AuthorID,
		Content:  c.Content,
	})
}

func (r *commentsRepo) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	row, err := r.q.GetCommentByID(ctx, id)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return mapComment(row), nil
}

func (r *commentsRepo) ListCommentsByCard(ctx context.Context, cardID string) ([]domain.Comment, error) {
	rows, err := r.q.ListCommentsByCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapComment(row))
	}
	return out, nil
}

func (r *commentsRepo) UpdateCommentContent(ctx context.Context, id string, content string) error {
	return r.q.UpdateCommentContent(ctx, gen.UpdateCommentContentParams{Content: content, ID: id})
}

func (r *commentsRepo) DeleteComment(ctx context.Context, id string) error {
	return r.q.DeleteComment(ctx, id)
}

func mapComment(row gen.CommentWithAuthorRow) domain.Comment {
	return domain.Comment{
		ID:         row.ID,
		CardID:     row.CardID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

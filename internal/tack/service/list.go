package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/idx"
)

type ListService struct {
	Store  store.Store
	Access *AccessResolver
}

// Create appends a list to the end of the board.
func (s *ListService) Create(ctx context.Context, actor domain.Actor, workspaceID, boardID, name string) (domain.List, error) {
	if _, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID); err != nil {
		return domain.List{}, err
	}

	now := time.Now().UTC()
	list := domain.List{
		ID:        idx.New().String(),
		BoardID:   boardID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		last, err := tx.Lists().MaxListPosition(ctx, boardID)
		if err != nil {
			return err
		}
		list.Position = last + 1
		return tx.Lists().CreateList(ctx, list)
	})
	if err != nil {
		return domain.List{}, err
	}
	return list, nil
}

// Reorder applies new positions to lists of one board. Any id that is not a
// list of this board rejects the whole request.
func (s *ListService) Reorder(ctx context.Context, actor domain.Actor, workspaceID, boardID string, positions []domain.ListPosition) error {
	if _, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		lists, err := tx.Lists().ListListsByBoard(ctx, boardID)
		if err != nil {
			return err
		}
		owned := make(map[string]bool, len(lists))
		for _, l := range lists {
			owned[l.ID] = true
		}

		for _, p := range positions {
			if !owned[p.ID] {
				return ErrForeignLists
			}
		}
		for _, p := range positions {
			if err := tx.Lists().UpdateListPosition(ctx, p.ID, p.Position); err != nil {
				return err
			}
		}
		return nil
	})
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/store"
	"github.com/aussiebroadwan/tack/pkg/idx"
	"github.com/aussiebroadwan/tack/pkg/slogx"
)

// CardService manages cards. Every operation requires access to the board
// the card lives on.
type CardService struct {
	Store  store.Store
	Access *AccessResolver
}

type NewCard struct {
	Title       string
	Description *string
	Priority    *domain.CardPriority
}

// Create appends a card to a list as TO_DO.
func (s *CardService) Create(ctx context.Context, actor domain.Actor, listID string, in NewCard) (domain.Card, error) {
	if _, err := s.Access.AuthorizeList(ctx, actor, listID); err != nil {
		return domain.Card{}, err
	}

	now := time.Now().UTC()
	card := domain.Card{
		ID:          idx.New().String(),
		ListID:      listID,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.StatusToDo,
		Priority:    domain.PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Priority != nil {
		card.Priority = *in.Priority
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		last, err := tx.Cards().MaxCardPosition(ctx, listID)
		if err != nil {
			return err
		}
		card.Position = last + 1
		return tx.Cards().CreateCard(ctx, card)
	})
	if err != nil {
		return domain.Card{}, err
	}
	return card, nil
}

func (s *CardService) Get(ctx context.Context, actor domain.Actor, cardID string) (domain.Card, error) {
	if _, err := s.Access.AuthorizeCard(ctx, actor, cardID); err != nil {
		return domain.Card{}, err
	}
	return s.load(ctx, cardID)
}

func (s *CardService) Update(ctx context.Context, actor domain.Actor, cardID string, patch domain.CardPatch) (domain.Card, error) {
	if _, err := s.Access.AuthorizeCard(ctx, actor, cardID); err != nil {
		return domain.Card{}, err
	}

	card, err := s.load(ctx, cardID)
	if err != nil {
		return domain.Card{}, err
	}
	if patch.Title != nil {
		card.Title = *patch.Title
	}
	if patch.Description != nil {
		// An empty description clears it.
		card.Description = patch.Description
		if *patch.Description == "" {
			card.Description = nil
		}
	}
	if patch.Status != nil {
		card.Status = *patch.Status
	}
	if patch.Priority != nil {
		card.Priority = *patch.Priority
	}

	if err := s.Store.Cards().UpdateCard(ctx, card); err != nil {
		return domain.Card{}, err
	}
	return s.load(ctx, cardID)
}

func (s *CardService) Delete(ctx context.Context, actor domain.Actor, cardID string) error {
	if _, err := s.Access.AuthorizeCard(ctx, actor, cardID); err != nil {
		return err
	}
	if err := s.Store.Cards().DeleteCard(ctx, cardID); err != nil {
		return notFound(err, ErrCardNotFound)
	}
	slogx.FromContext(ctx).Info("card deleted", slog.String("card_id", cardID))
	return nil
}

// Reorder moves cards, possibly across lists. All cards and all target
// lists must belong to a single board the actor can open.
func (s *CardService) Reorder(ctx context.Context, actor domain.Actor, positions []domain.CardPosition) error {
	if len(positions) == 0 {
		return nil
	}

	// 1. Pin every card and target list to one board.
	var boardID, workspaceID string
	pin := func(loc domain.Location) bool {
		if boardID == "" {
			boardID, workspaceID = loc.BoardID, loc.WorkspaceID
			return true
		}
		return loc.BoardID == boardID
	}
	for _, p := range positions {
		cardLoc, err := s.Store.Cards().LocateCard(ctx, p.ID)
		if err != nil {
			return notFound(err, ErrForeignCards)
		}
		listLoc, err := s.Store.Lists().LocateList(ctx, p.ListID)
		if err != nil {
			return notFound(err, ErrForeignCards)
		}
		if !pin(cardLoc) || !pin(listLoc) {
			return ErrForeignCards
		}
	}

	// 2. Board access.
	if _, err := s.Access.AuthorizeBoard(ctx, actor, workspaceID, boardID); err != nil {
		return err
	}

	// 3. Apply.
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, p := range positions {
			if err := tx.Cards().MoveCard(ctx, p.ID, p.ListID, p.Position); err != nil {
				return err
			}
		}
		return nil
	})
}

// Assign sets or clears the card's assignee. The assignee must be able to
// see the board.
func (s *CardService) Assign(ctx context.Context, actor domain.Actor, cardID string, assigneeID *string) (domain.Card, error) {
	access, err := s.Access.AuthorizeCard(ctx, actor, cardID)
	if err != nil {
		return domain.Card{}, err
	}

	if assigneeID != nil {
		m, err := s.Store.Memberships().GetMembership(ctx, *assigneeID, access.Board.WorkspaceID)
		if err != nil {
			return domain.Card{}, notFound(err, ErrAssigneeOutsider)
		}
		if err := s.Access.CanViewBoard(ctx, m, access.Board); err != nil {
			if errors.Is(err, ErrPrivateBoard) {
				return domain.Card{}, ErrAssigneeNoAccess
			}
			return domain.Card{}, err
		}
	}

	if err := s.Store.Cards().AssignCard(ctx, cardID, assigneeID); err != nil {
		return domain.Card{}, err
	}
	return s.load(ctx, cardID)
}

func (s *CardService) load(ctx context.Context, cardID string) (domain.Card, error) {
	card, err := s.Store.Cards().GetCardByID(ctx, cardID)
	if err != nil {
		return domain.Card{}, notFound(err, ErrCardNotFound)
	}
	return card, nil
}

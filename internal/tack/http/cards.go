package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

type CardsHandler struct {
	Cards *service.CardService
}

func priority(p *string) *domain.CardPriority {
	if p == nil {
		return nil
	}
	v := domain.CardPriority(*p)
	return &v
}

// HandleCreate handles POST /api/lists/{listId}/cards
//
//	@Summary		Create card
//	@Description	Appends a TO_DO card to the list. Priority defaults to MEDIUM.
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Param			listId	path		string								true	"List ID"
//	@Param			request	body		tacksdk.CreateCardRequest			true	"Card"
//	@Success		201		{object}	tacksdk.Envelope{data=tacksdk.Card}	"Created card"
//	@Failure		404		{object}	tacksdk.Envelope					"List not found"
//	@Security		BearerAuth
//	@Router			/api/lists/{listId}/cards [post].
func (h *CardsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "listId")
	if !ok {
		return
	}
	var req tacksdk.CreateCardRequest
	if !decode(w, r, &req) {
		return
	}

	card, err := h.Cards.Create(r.Context(), actor(r), ids[0], service.NewCard{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority(req.Priority),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "Card created successfully.", card)
}

// HandleGet handles GET /api/cards/{cardId}
//
//	@Summary		Get card
//	@Tags			Cards
//	@Produce		json
//	@Param			cardId	path		string								true	"Card ID"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.Card}	"Card"
//	@Failure		404		{object}	tacksdk.Envelope					"Card not found"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId} [get].
func (h *CardsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId")
	if !ok {
		return
	}

	card, err := h.Cards.Get(r.Context(), actor(r), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Card fetched successfully.", card)
}

// HandleUpdate handles PATCH /api/cards/{cardId}
//
//	@Summary		Update card
//	@Description	Only the fields sent are changed. An empty description clears it.
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Param			cardId	path		string								true	"Card ID"
//	@Param			request	body		tacksdk.UpdateCardRequest			true	"Changes"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.Card}	"Updated card"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId} [patch].
func (h *CardsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId")
	if !ok {
		return
	}
	var req tacksdk.UpdateCardRequest
	if !decode(w, r, &req) {
		return
	}

	patch := domain.CardPatch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority(req.Priority),
	}
	if req.Status != nil {
		s := domain.CardStatus(*req.Status)
		patch.Status = &s
	}

	card, err := h.Cards.Update(r.Context(), actor(r), ids[0], patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Card updated successfully.", card)
}

// HandleDelete handles DELETE /api/cards/{cardId}
//
//	@Summary		Delete card
//	@Tags			Cards
//	@Produce		json
//	@Param			cardId	path		string				true	"Card ID"
//	@Success		200		{object}	tacksdk.Envelope	"Deleted"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId} [delete].
func (h *CardsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId")
	if !ok {
		return
	}

	if err := h.Cards.Delete(r.Context(), actor(r), ids[0]); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Card deleted successfully.", nil)
}

// HandleReorder handles PATCH /api/cards/reorder
//
//	@Summary		Reorder cards
//	@Description	Moves cards within and between lists of a single board in one transaction.
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.ReorderCardsRequest	true	"New positions"
//	@Success		200		{object}	tacksdk.Envelope			"Reordered"
//	@Failure		400		{object}	tacksdk.Envelope			"Cards or lists span boards"
//	@Security		BearerAuth
//	@Router			/api/cards/reorder [patch].
func (h *CardsHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.ReorderCardsRequest
	if !decode(w, r, &req) {
		return
	}

	positions := make([]domain.CardPosition, len(req.Cards))
	for i, c := range req.Cards {
		positions[i] = domain.CardPosition{ID: c.ID, ListID: c.ListID, Position: c.Position}
	}

	if err := h.Cards.Reorder(r.Context(), actor(r), positions); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Cards reordered successfully.", nil)
}

// HandleAssign handles PATCH /api/cards/{cardId}/assign
//
//	@Summary		Assign card
//	@Description	Sets or clears (assigneeId null) the assignee. The assignee must be able to see the board.
//	@Tags			Cards
//	@Accept			json
//	@Produce		json
//	@Param			cardId	path		string								true	"Card ID"
//	@Param			request	body		tacksdk.AssignCardRequest			true	"Assignee"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.Card}	"Updated card"
//	@Failure		400		{object}	tacksdk.Envelope					"Assignee cannot see the board"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId}/assign [patch].
func (h *CardsHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId")
	if !ok {
		return
	}
	var req tacksdk.AssignCardRequest
	if !decode(w, r, &req) {
		return
	}

	card, err := h.Cards.Assign(r.Context(), actor(r), ids[0], req.AssigneeID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Card assigned successfully.", card)
}

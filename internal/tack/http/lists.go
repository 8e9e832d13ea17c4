package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

type ListsHandler struct {
	Lists *service.ListService
}

// HandleCreate handles POST /api/workspaces/{workspaceId}/boards/{boardId}/lists
//
//	@Summary		Create list
//	@Tags			Lists
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string								true	"Workspace ID"
//	@Param			boardId		path		string								true	"Board ID"
//	@Param			request		body		tacksdk.CreateListRequest			true	"List name"
//	@Success		201			{object}	tacksdk.Envelope{data=tacksdk.List}	"Created list"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId}/lists [post].
func (h *ListsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId")
	if !ok {
		return
	}
	var req tacksdk.CreateListRequest
	if !decode(w, r, &req) {
		return
	}

	list, err := h.Lists.Create(r.Context(), actor(r), ids[0], ids[1], req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "List created successfully.", list)
}

// HandleReorder handles PATCH /api/workspaces/{workspaceId}/boards/{boardId}/lists/reorder
//
//	@Summary		Reorder lists
//	@Description	Sets list positions in one transaction. Every list must belong to the board.
//	@Tags			Lists
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string						true	"Workspace ID"
//	@Param			boardId		path		string						true	"Board ID"
//	@Param			request		body		tacksdk.ReorderListsRequest	true	"New positions"
//	@Success		200			{object}	tacksdk.Envelope			"Reordered"
//	@Failure		400			{object}	tacksdk.Envelope			"Foreign list"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId}/lists/reorder [patch].
func (h *ListsHandler) HandleReorder(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId")
	if !ok {
		return
	}
	var req tacksdk.ReorderListsRequest
	if !decode(w, r, &req) {
		return
	}

	positions := make([]domain.ListPosition, len(req.Lists))
	for i, l := range req.Lists {
		positions[i] = domain.ListPosition{ID: l.ID, Position: l.Position}
	}

	if err := h.Lists.Reorder(r.Context(), actor(r), ids[0], ids[1], positions); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Lists reordered successfully.", nil)
}

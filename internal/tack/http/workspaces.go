package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

// WorkspacesHandler serves workspace CRUD.
type WorkspacesHandler struct {
	Workspaces *service.WorkspaceService
}

// HandleCreate handles POST /api/workspaces
//
//	@Summary		Create workspace
//	@Description	Creates a workspace with the caller as OWNER.
//	@Tags			Workspaces
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.WorkspaceRequest					true	"Workspace name"
//	@Success		201		{object}	tacksdk.Envelope{data=tacksdk.Workspace}	"Created workspace"
//	@Failure		422		{object}	tacksdk.Envelope							"Validation failed"
//	@Security		BearerAuth
//	@Router			/api/workspaces [post].
func (h *WorkspacesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.WorkspaceRequest
	if !decode(w, r, &req) {
		return
	}

	ws, err := h.Workspaces.Create(r.Context(), actor(r), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "Workspace created successfully.", ws)
}

// HandleList handles GET /api/workspaces
//
//	@Summary		List workspaces
//	@Description	Lists every workspace the caller belongs to, with the caller's role in each.
//	@Tags			Workspaces
//	@Produce		json
//	@Success		200	{object}	tacksdk.Envelope{data=[]tacksdk.Workspace}	"Workspaces"
//	@Security		BearerAuth
//	@Router			/api/workspaces [get].
func (h *WorkspacesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Workspaces.ListForUser(r.Context(), actor(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Workspaces fetched successfully.", list)
}

// HandleGet handles GET /api/workspaces/{workspaceId}
//
//	@Summary		Get workspace
//	@Tags			Workspaces
//	@Produce		json
//	@Param			workspaceId	path		string										true	"Workspace ID"
//	@Success		200			{object}	tacksdk.Envelope{data=tacksdk.Workspace}	"Workspace"
//	@Failure		403			{object}	tacksdk.Envelope							"Not a member"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId} [get].
func (h *WorkspacesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}

	ws, err := h.Workspaces.Get(r.Context(), actor(r), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Workspace details fetched successfully.", ws)
}

// HandleUpdate handles PATCH /api/workspaces/{workspaceId}
//
//	@Summary		Rename workspace
//	@Description	OWNER or ADMIN only.
//	@Tags			Workspaces
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string										true	"Workspace ID"
//	@Param			request		body		tacksdk.WorkspaceRequest					true	"New name"
//	@Success		200			{object}	tacksdk.Envelope{data=tacksdk.Workspace}	"Updated workspace"
//	@Failure		403			{object}	tacksdk.Envelope							"Insufficient role"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId} [patch].
func (h *WorkspacesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}
	var req tacksdk.WorkspaceRequest
	if !decode(w, r, &req) {
		return
	}

	ws, err := h.Workspaces.Update(r.Context(), actor(r), ids[0], req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Workspace updated successfully.", ws)
}

// HandleDelete handles DELETE /api/workspaces/{workspaceId}
//
//	@Summary		Delete workspace
//	@Description	OWNER only. Deletes every board, list, card and comment in the workspace.
//	@Tags			Workspaces
//	@Produce		json
//	@Param			workspaceId	path		string				true	"Workspace ID"
//	@Success		200			{object}	tacksdk.Envelope	"Deleted"
//	@Failure		403			{object}	tacksdk.Envelope	"Insufficient role"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId} [delete].
func (h *WorkspacesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}

	if err := h.Workspaces.Delete(r.Context(), actor(r), ids[0]); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Workspace deleted successfully.", nil)
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

// BoardsHandler serves boards and private board membership.
type BoardsHandler struct {
	Boards *service.BoardService
}

// HandleCreate handles POST /api/workspaces/{workspaceId}/boards
//
//	@Summary		Create board
//	@Description	OWNER or ADMIN only. The board starts with To Do, In Progress, In Review and Done lists.
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string										true	"Workspace ID"
//	@Param			request		body		tacksdk.CreateBoardRequest					true	"Board"
//	@Success		201			{object}	tacksdk.Envelope{data=tacksdk.BoardDetail}	"Created board"
//	@Failure		403			{object}	tacksdk.Envelope							"Insufficient role"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards [post].
func (h *BoardsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}
	var req tacksdk.CreateBoardRequest
	if !decode(w, r, &req) {
		return
	}

	board, err := h.Boards.Create(r.Context(), actor(r), ids[0], req.Name, domain.Visibility(req.Visibility))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "Board created successfully.", board)
}

// HandleList handles GET /api/workspaces/{workspaceId}/boards
//
//	@Summary		List boards
//	@Description	Managers see every board; members see public boards and private boards they were added to.
//	@Tags			Boards
//	@Produce		json
//	@Param			workspaceId	path		string									true	"Workspace ID"
//	@Success		200			{object}	tacksdk.Envelope{data=[]tacksdk.Board}	"Boards"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards [get].
func (h *BoardsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}

	boards, err := h.Boards.ListForUser(r.Context(), actor(r), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Boards fetched successfully.", boards)
}

// HandleGet handles GET /api/workspaces/{workspaceId}/boards/{boardId}
//
//	@Summary		Get board
//	@Description	Returns the board with its lists and cards in position order.
//	@Tags			Boards
//	@Produce		json
//	@Param			workspaceId	path		string										true	"Workspace ID"
//	@Param			boardId		path		string										true	"Board ID"
//	@Success		200			{object}	tacksdk.Envelope{data=tacksdk.BoardDetail}	"Board"
//	@Failure		403			{object}	tacksdk.Envelope							"Private board"
//	@Failure		404			{object}	tacksdk.Envelope							"Board not found"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId} [get].
func (h *BoardsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId")
	if !ok {
		return
	}

	board, err := h.Boards.Get(r.Context(), actor(r), ids[0], ids[1])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Board details fetched successfully.", board)
}

// HandleUpdate handles PATCH /api/workspaces/{workspaceId}/boards/{boardId}
//
//	@Summary		Update board
//	@Description	OWNER or ADMIN only. Only the fields sent are changed.
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string									true	"Workspace ID"
//	@Param			boardId		path		string									true	"Board ID"
//	@Param			request		body		tacksdk.UpdateBoardRequest				true	"Changes"
//	@Success		200			{object}	tacksdk.Envelope{data=tacksdk.Board}	"Updated board"
//	@Failure		403			{object}	tacksdk.Envelope						"Insufficient role"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId} [patch].
func (h *BoardsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId")
	if !ok {
		return
	}
	var req tacksdk.UpdateBoardRequest
	if !decode(w, r, &req) {
		return
	}

	patch := service.BoardPatch{Name: req.Name}
	if req.Visibility != nil {
		v := domain.Visibility(*req.Visibility)
		patch.Visibility = &v
	}

	board, err := h.Boards.Update(r.Context(), actor(r), ids[0], ids[1], patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Board updated successfully.", board)
}

// HandleDelete handles DELETE /api/workspaces/{workspaceId}/boards/{boardId}
//
//	@Summary		Delete board
//	@Tags			Boards
//	@Produce		json
//	@Param			workspaceId	path		string				true	"Workspace ID"
//	@Param			boardId		path		string				true	"Board ID"
//	@Success		200			{object}	tacksdk.Envelope	"Deleted"
//	@Failure		403			{object}	tacksdk.Envelope	"Insufficient role"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId} [delete].
func (h *BoardsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId")
	if !ok {
		return
	}

	if err := h.Boards.Delete(r.Context(), actor(r), ids[0], ids[1]); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Board deleted successfully.", nil)
}

// HandleListMembers handles GET /api/workspaces/{workspaceId}/boards/{boardId}/members
//
//	@Summary		List board members
//	@Tags			Boards
//	@Produce		json
//	@Param			workspaceId	path		string										true	"Workspace ID"
//	@Param			boardId		path		string										true	"Board ID"
//	@Success		200			{object}	tacksdk.Envelope{data=[]tacksdk.BoardMember}	"Board members"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId}/members [get].
func (h *BoardsHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId")
	if !ok {
		return
	}

	members, err := h.Boards.ListMembers(r.Context(), actor(r), ids[0], ids[1])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Board members fetched successfully.", members)
}

// HandleAddMember handles POST /api/workspaces/{workspaceId}/boards/{boardId}/members
//
//	@Summary		Add board member
//	@Description	OWNER or ADMIN only. Private boards only; the user must belong to the workspace.
//	@Tags			Boards
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string						true	"Workspace ID"
//	@Param			boardId		path		string						true	"Board ID"
//	@Param			request		body		tacksdk.BoardMemberRequest	true	"User to add"
//	@Success		201			{object}	tacksdk.Envelope			"Added"
//	@Failure		403			{object}	tacksdk.Envelope			"Public board or outsider"
//	@Failure		409			{object}	tacksdk.Envelope			"Already a board member"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId}/members [post].
func (h *BoardsHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId")
	if !ok {
		return
	}
	var req tacksdk.BoardMemberRequest
	if !decode(w, r, &req) {
		return
	}

	if err := h.Boards.AddMember(r.Context(), actor(r), ids[0], ids[1], req.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "Member added to board successfully.", nil)
}

// HandleRemoveMember handles DELETE /api/workspaces/{workspaceId}/boards/{boardId}/members/{userId}
//
//	@Summary		Remove board member
//	@Tags			Boards
//	@Produce		json
//	@Param			workspaceId	path		string				true	"Workspace ID"
//	@Param			boardId		path		string				true	"Board ID"
//	@Param			userId		path		string				true	"User ID"
//	@Success		200			{object}	tacksdk.Envelope	"Removed"
//	@Failure		404			{object}	tacksdk.Envelope	"Not a board member"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/boards/{boardId}/members/{userId} [delete].
func (h *BoardsHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "boardId", "userId")
	if !ok {
		return
	}

	if err := h.Boards.RemoveMember(r.Context(), actor(r), ids[0], ids[1], ids[2]); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Member removed from board successfully.", nil)
}

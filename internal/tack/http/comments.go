package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

type CommentsHandler struct {
	Comments *service.CommentService
}

// HandleCreate handles POST /api/cards/{cardId}/comments
//
//	@Summary		Add comment
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			cardId	path		string									true	"Card ID"
//	@Param			request	body		tacksdk.CommentRequest					true	"Comment"
//	@Success		201		{object}	tacksdk.Envelope{data=tacksdk.Comment}	"Created comment"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId}/comments [post].
func (h *CommentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId")
	if !ok {
		return
	}
	var req tacksdk.CommentRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.Comments.Create(r.Context(), actor(r), ids[0], req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "Comment added successfully.", c)
}

// HandleList handles GET /api/cards/{cardId}/comments
//
//	@Summary		List comments
//	@Description	Oldest first, with author names.
//	@Tags			Comments
//	@Produce		json
//	@Param			cardId	path		string										true	"Card ID"
//	@Success		200		{object}	tacksdk.Envelope{data=[]tacksdk.Comment}	"Comments"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId}/comments [get].
func (h *CommentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId")
	if !ok {
		return
	}

	comments, err := h.Comments.List(r.Context(), actor(r), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Comments fetched successfully.", comments)
}

// HandleUpdate handles PATCH /api/cards/{cardId}/comments/{commentId}
//
//	@Summary		Edit comment
//	@Description	Authors only.
//	@Tags			Comments
//	@Accept			json
//	@Produce		json
//	@Param			cardId		path		string									true	"Card ID"
//	@Param			commentId	path		string									true	"Comment ID"
//	@Param			request		body		tacksdk.CommentRequest					true	"New content"
//	@Success		200			{object}	tacksdk.Envelope{data=tacksdk.Comment}	"Updated comment"
//	@Failure		403			{object}	tacksdk.Envelope						"Not the author"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId}/comments/{commentId} [patch].
func (h *CommentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId", "commentId")
	if !ok {
		return
	}
	var req tacksdk.CommentRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := h.Comments.Update(r.Context(), actor(r), ids[0], ids[1], req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Comment updated successfully.", c)
}

// HandleDelete handles DELETE /api/cards/{cardId}/comments/{commentId}
//
//	@Summary		Delete comment
//	@Description	The author, or an OWNER or ADMIN of the workspace.
//	@Tags			Comments
//	@Produce		json
//	@Param			cardId		path		string				true	"Card ID"
//	@Param			commentId	path		string				true	"Comment ID"
//	@Success		200			{object}	tacksdk.Envelope	"Deleted"
//	@Failure		403			{object}	tacksdk.Envelope	"Not the author"
//	@Security		BearerAuth
//	@Router			/api/cards/{cardId}/comments/{commentId} [delete].
func (h *CommentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "cardId", "commentId")
	if !ok {
		return
	}

	if err := h.Comments.Delete(r.Context(), actor(r), ids[0], ids[1]); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Comment deleted successfully.", nil)
}

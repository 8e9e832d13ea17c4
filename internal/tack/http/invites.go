package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

// InvitesHandler serves the invitee's side of an invitation.
type InvitesHandler struct {
	Invites *service.InviteService
}

// HandleVerify handles GET /api/invites/verify/{token}
//
//	@Summary		Preview invitation
//	@Description	Public. Shows which email and workspace an invitation is for.
//	@Tags			Invites
//	@Produce		json
//	@Param			token	path		string											true	"Invitation token"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.InvitePreview}	"Invitation"
//	@Failure		404		{object}	tacksdk.Envelope								"Invalid or expired"
//	@Router			/api/invites/verify/{token} [get].
func (h *InvitesHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	preview, err := h.Invites.VerifyInvite(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Invite token is valid.", preview)
}

// HandleAccept handles POST /api/invites/accept
//
//	@Summary		Accept invitation
//	@Description	Joins the workspace. The caller's email must match the invitation.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tacksdk.AcceptInviteRequest					true	"Invitation token"
//	@Success		200		{object}	tacksdk.Envelope{data=tacksdk.Membership}	"New membership"
//	@Failure		403		{object}	tacksdk.Envelope							"Different email"
//	@Failure		404		{object}	tacksdk.Envelope							"Invalid or expired"
//	@Failure		409		{object}	tacksdk.Envelope							"Already a member"
//	@Security		BearerAuth
//	@Router			/api/invites/accept [post].
func (h *InvitesHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var req tacksdk.AcceptInviteRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := h.Invites.AcceptInvite(r.Context(), actor(r), req.Token)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Invitation accepted. Welcome to the workspace!", m)
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/aussiebroadwan/tack/internal/tack/service"
	"github.com/aussiebroadwan/tack/pkg/httpx"
	"github.com/aussiebroadwan/tack/pkg/tacksdk"
)

// MembersHandler serves workspace membership and outgoing invitations.
type MembersHandler struct {
	Members *service.MemberService
	Invites *service.InviteService
}

// HandleInvite handles POST /api/workspaces/{workspaceId}/members/invite
//
//	@Summary		Invite member
//	@Description	OWNER or ADMIN only. Emails a seven day invitation for the given role.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId	path		string										true	"Workspace ID"
//	@Param			request		body		tacksdk.InviteRequest						true	"Invitee and role"
//	@Success		201			{object}	tacksdk.Envelope{data=tacksdk.IssuedInvite}	"Invitation sent"
//	@Failure		403			{object}	tacksdk.Envelope							"Insufficient role"
//	@Failure		409			{object}	tacksdk.Envelope							"Already a member or already invited"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/members/invite [post].
func (h *MembersHandler) HandleInvite(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}
	var req tacksdk.InviteRequest
	if !decode(w, r, &req) {
		return
	}

	inv, err := h.Invites.CreateInvite(r.Context(), actor(r), ids[0], req.Email, domain.Role(req.Role))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "Invitation sent successfully.", inv)
}

// HandleListInvites handles GET /api/workspaces/{workspaceId}/members/invites
//
//	@Summary		Pending invitations
//	@Description	OWNER or ADMIN only. Lists unexpired invitations, newest first.
//	@Tags			Members
//	@Produce		json
//	@Param			workspaceId	path		string									true	"Workspace ID"
//	@Success		200			{object}	tacksdk.Envelope{data=[]tacksdk.Invite}	"Invitations"
//	@Failure		403			{object}	tacksdk.Envelope						"Insufficient role"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/members/invites [get].
func (h *MembersHandler) HandleListInvites(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}

	invites, err := h.Invites.ListPendingInvites(r.Context(), actor(r), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Pending invites fetched successfully.", invites)
}

// HandleList handles GET /api/workspaces/{workspaceId}/members
//
//	@Summary		List members
//	@Tags			Members
//	@Produce		json
//	@Param			workspaceId	path		string									true	"Workspace ID"
//	@Success		200			{object}	tacksdk.Envelope{data=[]tacksdk.Member}	"Members"
//	@Failure		403			{object}	tacksdk.Envelope						"Not a member"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId")
	if !ok {
		return
	}

	members, err := h.Members.List(r.Context(), actor(r), ids[0])
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Workspace members fetched successfully.", members)
}

// HandleUpdateRole handles PATCH /api/workspaces/{workspaceId}/members/{membershipId}
//
//	@Summary		Change member role
//	@Description	OWNER or ADMIN only. The owner's role cannot be changed and OWNER cannot be assigned.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			workspaceId		path		string										true	"Workspace ID"
//	@Param			membershipId	path		string										true	"Membership ID"
//	@Param			request			body		tacksdk.UpdateRoleRequest					true	"New role"
//	@Success		200				{object}	tacksdk.Envelope{data=tacksdk.Membership}	"Updated membership"
//	@Failure		403				{object}	tacksdk.Envelope							"Insufficient role or owner"
//	@Failure		404				{object}	tacksdk.Envelope							"Membership not found"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/members/{membershipId} [patch].
func (h *MembersHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "membershipId")
	if !ok {
		return
	}
	var req tacksdk.UpdateRoleRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := h.Members.UpdateRole(r.Context(), actor(r), ids[0], ids[1], domain.Role(req.Role))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Member's role updated successfully.", m)
}

// HandleRemove handles DELETE /api/workspaces/{workspaceId}/members/{membershipId}
//
//	@Summary		Remove member
//	@Description	OWNER or ADMIN only. Also drops the member's private board access in this workspace.
//	@Tags			Members
//	@Produce		json
//	@Param			workspaceId		path		string				true	"Workspace ID"
//	@Param			membershipId	path		string				true	"Membership ID"
//	@Success		200				{object}	tacksdk.Envelope	"Removed"
//	@Failure		403				{object}	tacksdk.Envelope	"Insufficient role or owner"
//	@Security		BearerAuth
//	@Router			/api/workspaces/{workspaceId}/members/{membershipId} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathIDs(w, r, "workspaceId", "membershipId")
	if !ok {
		return
	}

	if err := h.Members.Remove(r.Context(), actor(r), ids[0], ids[1]); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Member removed successfully.", nil)
}

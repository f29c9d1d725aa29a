package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/middleware"
)

const memberNotFound = "Member not found"

// memberHandler serves the admin member-management endpoints.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberManagementRoutes expects rg to be admin-only already.
func registerMemberManagementRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	rg.POST("", h.createMember)
	rg.GET("", h.listMembers)
	rg.GET("/:memberID", h.getMember)
	rg.PATCH("/:memberID/status", h.updateMemberStatus)
}

// createMember godoc
// @Summary Create a member
// @Description Creates an ACTIVE member with zero holdings on behalf of the member.
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.Response{data=dto.MemberResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Security BearerAuth
// @Router /auth/admin/members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req, actor.ID)
	if err != nil {
		respondError(c, err, "Failed to create member")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Member created by admin", slog.String("member_id", member.MemberID))
	respondSuccess(c, http.StatusCreated, "Member created", dto.ToMemberResponse(member))
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Param status query string false "ACTIVE or SUSPENDED"
// @Success 200 {object} dto.Response{data=dto.ListMembersResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /auth/admin/members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	members, total, err := h.memberService.ListMembers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	respondSuccess(c, http.StatusOK, "Members retrieved",
		dto.ToListMembersResponse(members, total, params.Limit, params.Offset))
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param memberID path string true "Member ID"
// @Success 200 {object} dto.Response{data=dto.MemberResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /auth/admin/members/{memberID} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	var uri dto.MemberURI
	if !bindURIOrNotFound(c, &uri, memberNotFound) {
		return
	}
	member, err := h.memberService.GetMemberByID(c.Request.Context(), uri.MemberID)
	if err != nil {
		respondError(c, err, "Failed to get member")
		return
	}
	respondSuccess(c, http.StatusOK, "Member retrieved", dto.ToMemberResponse(member))
}

// updateMemberStatus godoc
// @Summary Activate or suspend a member
// @Description Suspending a member also revokes their refresh token.
// @Tags members
// @Accept json
// @Produce json
// @Param memberID path string true "Member ID"
// @Param status body dto.UpdateMemberStatusRequest true "New status"
// @Success 200 {object} dto.Response{data=dto.MemberResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /auth/admin/members/{memberID}/status [patch]
func (h *memberHandler) updateMemberStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var uri dto.MemberURI
	if !bindURIOrNotFound(c, &uri, memberNotFound) {
		return
	}
	var req dto.UpdateMemberStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.memberService.UpdateMemberStatus(c.Request.Context(), uri.MemberID, req.Status, actor.ID)
	if err != nil {
		respondError(c, err, "Failed to update member status")
		return
	}
	respondSuccess(c, http.StatusOK, "Member status updated", dto.ToMemberResponse(member))
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests related to household members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

// newMemberHandler creates a new memberHandler.
func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers routes related to members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.DELETE("/:memberID", h.deleteMember)
	}
}

func (h *memberHandler) createMember(c *gin.Context) {
	logger := middleware.GetLogger(c)
	var req dto.CreateMemberRequest
	if !bindJSON(c, logger, &req) {
		return
	}

	member, err := h.memberService.AddMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create member")
		return
	}

	logger.Info("Member created", slog.String("member_id", member.ID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(*member))
}

func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLogger(c)

	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMemberResponse(members))
}

// deleteMember removes the member together with everything it owns.
func (h *memberHandler) deleteMember(c *gin.Context) {
	logger := middleware.GetLogger(c)
	memberID := c.Param("memberID")

	if err := h.memberService.DeleteMember(c.Request.Context(), memberID); err != nil {
		respondError(c, logger.With(slog.String("member_id", memberID)), err, "Failed to delete member")
		return
	}

	logger.Info("Member deleted", slog.String("member_id", memberID))
	c.Status(http.StatusNoContent)
}

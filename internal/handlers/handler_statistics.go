package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

type statisticsHandler struct {
	statisticsService portssvc.StatisticsSvc
}

func registerStatisticsRoutes(rg *gin.RouterGroup, ss portssvc.StatisticsSvc, adminOnly, memberOnly gin.HandlerFunc) {
	h := &statisticsHandler{statisticsService: ss}

	rg.GET("/dashboard", adminOnly, h.getDashboard)
	rg.GET("/member", memberOnly, h.getMemberStats)
}

// getDashboard godoc
// @Summary Admin dashboard
// @Description Member counts, total gold held, trade counts and volumes, and holdings valued at the active sell price.
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.Response{data=dto.DashboardStatsResponse}
// @Failure 403 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/dashboard [get]
func (h *statisticsHandler) getDashboard(c *gin.Context) {
	stats, err := h.statisticsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard statistics")
		return
	}
	respondSuccess(c, http.StatusOK, "Dashboard statistics", dto.ToDashboardStatsResponse(stats))
}

// getMemberStats godoc
// @Summary Member portfolio statistics
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.Response{data=dto.MemberStatsResponse}
// @Failure 403 {object} dto.Response
// @Security BearerAuth
// @Router /statistics/member [get]
func (h *statisticsHandler) getMemberStats(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	stats, err := h.statisticsService.GetMemberStats(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to build member statistics")
		return
	}
	respondSuccess(c, http.StatusOK, "Member statistics", dto.ToMemberStatsResponse(stats))
}

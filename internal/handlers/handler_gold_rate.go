package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/middleware"
)

// goldRateHandler handles HTTP requests related to gold rates.
type goldRateHandler struct {
	goldRateService portssvc.GoldRateSvcFacade
}

// newGoldRateHandler creates a new goldRateHandler.
func newGoldRateHandler(grs portssvc.GoldRateSvcFacade) *goldRateHandler {
	return &goldRateHandler{goldRateService: grs}
}

// registerGoldRateRoutes registers routes related to gold rates. rg must be authenticated.
func registerGoldRateRoutes(rg *gin.RouterGroup, goldRateService portssvc.GoldRateSvcFacade, adminOnly gin.HandlerFunc) {
	h := newGoldRateHandler(goldRateService)

	rg.POST("", adminOnly, h.createGoldRate)
	rg.GET("", h.listGoldRates)
	rg.GET("/active", h.getActiveGoldRate)
	rg.GET("/:goldRateID", h.getGoldRate)
}

// createGoldRate godoc
// @Summary Publish a new gold rate
// @Description Deactivates the current rate and activates the new one. sellPrice must not be below buyPrice.
// @Tags gold rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateGoldRateRequest true "Gold rate"
// @Success 201 {object} dto.Response{data=dto.GoldRateResponse}
// @Failure 400 {object} dto.Response "Invalid prices"
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Security BearerAuth
// @Router /gold-rates [post]
func (h *goldRateHandler) createGoldRate(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateGoldRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create gold rate",
		slog.String("buy_price", req.BuyPrice.String()),
		slog.String("sell_price", req.SellPrice.String()))

	rate, err := h.goldRateService.CreateGoldRate(c.Request.Context(), req, actor.ID)
	if err != nil {
		respondError(c, err, "Failed to create gold rate")
		return
	}
	respondSuccess(c, http.StatusCreated, "Gold rate created", dto.ToGoldRateResponse(rate))
}

// getActiveGoldRate godoc
// @Summary Get the active gold rate
// @Tags gold rates
// @Produce json
// @Success 200 {object} dto.Response{data=dto.GoldRateResponse}
// @Failure 404 {object} dto.Response "No active gold rate"
// @Security BearerAuth
// @Router /gold-rates/active [get]
func (h *goldRateHandler) getActiveGoldRate(c *gin.Context) {
	rate, err := h.goldRateService.GetActiveGoldRate(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get active gold rate")
		return
	}
	respondSuccess(c, http.StatusOK, "Active gold rate", dto.ToGoldRateResponse(rate))
}

// listGoldRates godoc
// @Summary Gold rate history
// @Tags gold rates
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.Response{data=dto.ListGoldRatesResponse}
// @Security BearerAuth
// @Router /gold-rates [get]
func (h *goldRateHandler) listGoldRates(c *gin.Context) {
	var params dto.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	rates, total, err := h.goldRateService.ListGoldRates(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list gold rates")
		return
	}
	respondSuccess(c, http.StatusOK, "Gold rates retrieved",
		dto.ToListGoldRatesResponse(rates, total, params.Limit, params.Offset))
}

// getGoldRate godoc
// @Summary Get a gold rate
// @Tags gold rates
// @Produce json
// @Param goldRateID path string true "Gold rate ID"
// @Success 200 {object} dto.Response{data=dto.GoldRateResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /gold-rates/{goldRateID} [get]
func (h *goldRateHandler) getGoldRate(c *gin.Context) {
	var uri dto.GoldRateURI
	if !bindURIOrNotFound(c, &uri, "Gold rate not found") {
		return
	}
	rate, err := h.goldRateService.GetGoldRateByID(c.Request.Context(), uri.GoldRateID)
	if err != nil {
		respondError(c, err, "Failed to get gold rate")
		return
	}
	respondSuccess(c, http.StatusOK, "Gold rate retrieved", dto.ToGoldRateResponse(rate))
}

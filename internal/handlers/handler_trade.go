package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

const tradeNotFound = "Trade not found"

// tradeHandler handles HTTP requests related to trades.
type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

func newTradeHandler(ts portssvc.TradeSvcFacade) *tradeHandler {
	return &tradeHandler{tradeService: ts}
}

// registerTradeRoutes registers the trade routes. rg must be authenticated;
// role rules for creation and visibility live in the service.
func registerTradeRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade, adminOnly gin.HandlerFunc) {
	h := newTradeHandler(tradeService)

	rg.POST("", h.createTrade)
	rg.GET("", h.listTrades)
	rg.GET("/:tradeID", h.getTrade)
	rg.POST("/:tradeID/approve", adminOnly, h.approveTrade)
	rg.POST("/:tradeID/reject", adminOnly, h.rejectTrade)
	rg.POST("/:tradeID/cancel", adminOnly, h.cancelTrade)
}

// createTrade godoc
// @Summary Create a trade
// @Description Admins create BUY or SELL trades for any member (memberID required). Members may only create SELL trades for themselves.
// @Tags trades
// @Accept json
// @Produce json
// @Param trade body dto.CreateTradeRequest true "Trade"
// @Success 201 {object} dto.Response{data=dto.TradeResponse}
// @Failure 400 {object} dto.Response "Validation error, no active rate or insufficient holdings"
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response "Member not found"
// @Security BearerAuth
// @Router /trades [post]
func (h *tradeHandler) createTrade(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	trade, err := h.tradeService.CreateTrade(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, "Failed to create trade")
		return
	}
	respondSuccess(c, http.StatusCreated, "Trade created", dto.ToTradeResponse(trade))
}

// listTrades godoc
// @Summary List trades
// @Description Newest first. Members only ever see their own trades.
// @Tags trades
// @Produce json
// @Param memberID query string false "Member ID (admins only)"
// @Param status query string false "PENDING, COMPLETED or CANCELLED"
// @Param tradeType query string false "BUY or SELL"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.Response{data=dto.ListTradesResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /trades [get]
func (h *tradeHandler) listTrades(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.ListTradesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	trades, nextToken, err := h.tradeService.ListTrades(c.Request.Context(), params, actor)
	if err != nil {
		respondError(c, err, "Failed to list trades")
		return
	}
	respondSuccess(c, http.StatusOK, "Trades retrieved", dto.ToListTradesResponse(trades, nextToken))
}

// getTrade godoc
// @Summary Get a trade
// @Tags trades
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Success 200 {object} dto.Response{data=dto.TradeResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /trades/{tradeID} [get]
func (h *tradeHandler) getTrade(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var uri dto.TradeURI
	if !bindURIOrNotFound(c, &uri, tradeNotFound) {
		return
	}
	trade, err := h.tradeService.GetTradeByID(c.Request.Context(), uri.TradeID, actor)
	if err != nil {
		respondError(c, err, "Failed to get trade")
		return
	}
	respondSuccess(c, http.StatusOK, "Trade retrieved", dto.ToTradeResponse(trade))
}

// approveTrade godoc
// @Summary Approve a pending trade
// @Description Completes the trade and applies it to the member's holdings.
// @Tags trades
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Success 200 {object} dto.Response{data=dto.TradeResponse}
// @Failure 400 {object} dto.Response "Not pending or insufficient holdings"
// @Failure 403 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /trades/{tradeID}/approve [post]
func (h *tradeHandler) approveTrade(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var uri dto.TradeURI
	if !bindURIOrNotFound(c, &uri, tradeNotFound) {
		return
	}
	trade, err := h.tradeService.ApproveTrade(c.Request.Context(), uri.TradeID, actor)
	if err != nil {
		respondError(c, err, "Failed to approve trade")
		return
	}
	respondSuccess(c, http.StatusOK, "Trade approved", dto.ToTradeResponse(trade))
}

// rejectTrade godoc
// @Summary Reject a pending trade
// @Tags trades
// @Accept json
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Param reason body dto.TradeReasonRequest false "Reason"
// @Success 200 {object} dto.Response{data=dto.TradeResponse}
// @Failure 400 {object} dto.Response "Not pending"
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /trades/{tradeID}/reject [post]
func (h *tradeHandler) rejectTrade(c *gin.Context) {
	h.closeTrade(c, "Trade rejected", func(tradeID string, actor domain.Actor, reason *string) (*domain.Trade, error) {
		return h.tradeService.RejectTrade(c.Request.Context(), tradeID, reason, actor)
	})
}

// cancelTrade godoc
// @Summary Cancel a trade
// @Description Cancels a pending trade, or reverses a completed one exactly once.
// @Tags trades
// @Accept json
// @Produce json
// @Param tradeID path string true "Trade ID"
// @Param reason body dto.TradeReasonRequest false "Reason"
// @Success 200 {object} dto.Response{data=dto.TradeResponse}
// @Failure 400 {object} dto.Response "Already cancelled or reversal not possible"
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /trades/{tradeID}/cancel [post]
func (h *tradeHandler) cancelTrade(c *gin.Context) {
	h.closeTrade(c, "Trade cancelled", func(tradeID string, actor domain.Actor, reason *string) (*domain.Trade, error) {
		return h.tradeService.CancelTrade(c.Request.Context(), tradeID, reason, actor)
	})
}

// closeTrade binds the optional reason body shared by reject and cancel.
func (h *tradeHandler) closeTrade(c *gin.Context, message string, run func(string, domain.Actor, *string) (*domain.Trade, error)) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var uri dto.TradeURI
	if !bindURIOrNotFound(c, &uri, tradeNotFound) {
		return
	}
	var req dto.TradeReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, err)
		return
	}

	trade, err := run(uri.TradeID, actor, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to change trade status")
		return
	}
	respondSuccess(c, http.StatusOK, message, dto.ToTradeResponse(trade))
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// CreateTradeRequest defines the structure for creating a new trade.
// MemberID is required for admins; members may omit it and trade for themselves.
type CreateTradeRequest struct {
	MemberID  string           `json:"memberID" binding:"omitempty,uuid"`
	TradeType domain.TradeType `json:"tradeType" binding:"required,oneof=BUY SELL"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required,dgt0"`
	Notes     *string          `json:"notes" binding:"omitempty,max=500"`
}

// TradeReasonRequest is the optional body of reject and cancel.
type TradeReasonRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}

// ListTradesParams defines query parameters for listing trades.
type ListTradesParams struct {
	MemberID  string             `form:"memberID" binding:"omitempty,uuid"`
	Status    domain.TradeStatus `form:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	TradeType domain.TradeType   `form:"tradeType" binding:"omitempty,oneof=BUY SELL"`
	Limit     int                `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string            `form:"nextToken"`
}

// TradeResponse defines the structure for API responses containing trade details.
type TradeResponse struct {
	TradeID         string             `json:"tradeID"`
	MemberID        string             `json:"memberID"`
	TradeType       domain.TradeType   `json:"tradeType"`
	Quantity        decimal.Decimal    `json:"quantity"`
	RateAtTrade     decimal.Decimal    `json:"rateAtTrade"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Status          domain.TradeStatus `json:"status"`
	GoldRateID      string             `json:"goldRateID"`
	InitiatedBy     string             `json:"initiatedBy"`
	InitiatedByRole domain.Role        `json:"initiatedByRole"`
	ApprovedBy      *string            `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time         `json:"approvedAt,omitempty"`
	CancelledBy     *string            `json:"cancelledBy,omitempty"`
	CancelledAt     *time.Time         `json:"cancelledAt,omitempty"`
	CancelReason    *string            `json:"cancelReason,omitempty"`
	Notes           *string            `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy   string             `json:"lastUpdatedBy"`
}

// ListTradesResponse wraps a page of trades and the token for the next one.
type ListTradesResponse struct {
	Trades    []TradeResponse `json:"trades"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToTradeResponse converts a domain.Trade to TradeResponse DTO
func ToTradeResponse(t *domain.Trade) TradeResponse {
	return TradeResponse{
		TradeID:         t.TradeID,
		MemberID:        t.MemberID,
		TradeType:       t.TradeType,
		Quantity:        t.Quantity,
		RateAtTrade:     t.RateAtTrade,
		TotalAmount:     t.TotalAmount,
		Status:          t.Status,
		GoldRateID:      t.GoldRateID,
		InitiatedBy:     t.InitiatedBy,
		InitiatedByRole: t.InitiatedByRole,
		ApprovedBy:      t.ApprovedBy,
		ApprovedAt:      t.ApprovedAt,
		CancelledBy:     t.CancelledBy,
		CancelledAt:     t.CancelledAt,
		CancelReason:    t.CancelReason,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
		LastUpdatedAt:   t.LastUpdatedAt,
		LastUpdatedBy:   t.LastUpdatedBy,
	}
}

// ToListTradesResponse converts a slice of domain.Trade to a ListTradesResponse.
func ToListTradesResponse(trades []domain.Trade, nextToken *string) ListTradesResponse {
	resp := ListTradesResponse{
		Trades:    make([]TradeResponse, len(trades)),
		NextToken: nextToken,
	}
	for i := range trades {
		resp.Trades[i] = ToTradeResponse(&trades[i])
	}
	return resp
}

package services

import (
	"context"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

// TradeReaderSvc defines read operations for trades. Members only ever see their own.
type TradeReaderSvc interface {
	// GetTradeByID retrieves a trade visible to actor.
	GetTradeByID(ctx context.Context, tradeID string, actor domain.Actor) (*domain.Trade, error)

	// ListTrades retrieves a page of trades visible to actor and the next page token.
	ListTrades(ctx context.Context, params dto.ListTradesParams, actor domain.Actor) ([]domain.Trade, *string, error)
}

// TradeWriterSvc defines trade creation
type TradeWriterSvc interface {
	// CreateTrade records a PENDING trade priced at the active rate.
	CreateTrade(ctx context.Context, req dto.CreateTradeRequest, actor domain.Actor) (*domain.Trade, error)
}

// TradeLifecycleSvc defines the admin-only status transitions
type TradeLifecycleSvc interface {
	// ApproveTrade completes a PENDING trade and applies it to the member's holdings.
	ApproveTrade(ctx context.Context, tradeID string, actor domain.Actor) (*domain.Trade, error)

	// RejectTrade cancels a PENDING trade without touching holdings.
	RejectTrade(ctx context.Context, tradeID string, reason *string, actor domain.Actor) (*domain.Trade, error)

	// CancelTrade cancels a PENDING or COMPLETED trade, reversing holdings for the latter.
	CancelTrade(ctx context.Context, tradeID string, reason *string, actor domain.Actor) (*domain.Trade, error)
}

// TradeSvcFacade combines all trade-related service interfaces
type TradeSvcFacade interface {
	TradeReaderSvc
	TradeWriterSvc
	TradeLifecycleSvc
}

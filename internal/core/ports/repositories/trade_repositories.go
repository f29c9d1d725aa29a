package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// TradeReader defines read operations for trade data
type TradeReader interface {
	// FindTradeByID retrieves a trade by ID.
	FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error)

	// ListTrades retrieves trades matching filter, newest first, using token-based pagination.
	// It returns the trades, a token for the next page, and an error.
	ListTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, *string, error)
}

// TradeWriter defines write operations for trade data
type TradeWriter interface {
	// SaveTrade persists a new trade.
	SaveTrade(ctx context.Context, trade domain.Trade) error
}

// TradeTransactionSupport defines operations used by status transitions
type TradeTransactionSupport interface {
	// FindTradeByIDForUpdate selects a trade and locks the row until tx ends.
	FindTradeByIDForUpdate(ctx context.Context, tx pgx.Tx, tradeID string) (*domain.Trade, error)

	// UpdateTradeStatusInTx persists the status and approval/cancellation fields of trade.
	UpdateTradeStatusInTx(ctx context.Context, tx pgx.Tx, trade domain.Trade) error
}

// TradeRepositoryFacade combines all trade-related repository interfaces
type TradeRepositoryFacade interface {
	TradeReader
	TradeWriter
	TradeTransactionSupport
}

// TradeRepositoryWithTx extends TradeRepositoryFacade with transaction capabilities
type TradeRepositoryWithTx interface {
	TradeRepositoryFacade
	TransactionManager
}

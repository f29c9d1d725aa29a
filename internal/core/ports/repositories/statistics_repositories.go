package repositories

import (
	"context"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// StatisticsRepository defines aggregate queries for the dashboards
type StatisticsRepository interface {
	// GetMemberCounts returns member totals and the sum of all holdings.
	GetMemberCounts(ctx context.Context) (*domain.MemberCounts, error)

	// GetTradeStats aggregates trades; memberID empty means all members.
	GetTradeStats(ctx context.Context, memberID string) (*domain.TradeStats, error)
}

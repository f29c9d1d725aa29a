package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
)

type PgxStatisticsRepository struct {
	BaseRepository
}

func newPgxStatisticsRepository(pool *pgxpool.Pool) portsrepo.StatisticsRepository {
	return &PgxStatisticsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StatisticsRepository = (*PgxStatisticsRepository)(nil)

func (r *PgxStatisticsRepository) GetMemberCounts(ctx context.Context) (*domain.MemberCounts, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'ACTIVE'),
			COALESCE(SUM(gold_holdings), 0)
		FROM members;
	`
	var counts domain.MemberCounts
	if err := r.Pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active, &counts.GoldHoldings); err != nil {
		return nil, fmt.Errorf("failed to aggregate members: %w", err)
	}
	return &counts, nil
}

func (r *PgxStatisticsRepository) GetTradeStats(ctx context.Context, memberID string) (*domain.TradeStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'COMPLETED'),
			COUNT(*) FILTER (WHERE status = 'CANCELLED'),
			COALESCE(SUM(quantity) FILTER (WHERE status = 'COMPLETED' AND trade_type = 'BUY'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'COMPLETED' AND trade_type = 'BUY'), 0),
			COALESCE(SUM(quantity) FILTER (WHERE status = 'COMPLETED' AND trade_type = 'SELL'), 0),
			COALESCE(SUM(total_amount) FILTER (WHERE status = 'COMPLETED' AND trade_type = 'SELL'), 0)
		FROM trades`
	args := []any{}
	if memberID != "" {
		query += ` WHERE member_id = $1`
		args = append(args, memberID)
	}

	var s domain.TradeStats
	if err := r.Pool.QueryRow(ctx, query+";", args...).Scan(
		&s.Pending,
		&s.Completed,
		&s.Cancelled,
		&s.Bought.Quantity,
		&s.Bought.Amount,
		&s.Sold.Quantity,
		&s.Sold.Amount,
	); err != nil {
		return nil, fmt.Errorf("failed to aggregate trades: %w", err)
	}
	return &s, nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/utils/mapping"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/utils/pagination"
)

const tradeColumns = `trade_id, member_id, trade_type, quantity, rate_at_trade, total_amount, status,
	gold_rate_id, initiated_by, initiated_by_role, approved_by, approved_at,
	cancelled_by, cancelled_at, cancel_reason, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTradeRepository struct {
	BaseRepository
}

func newPgxTradeRepository(pool *pgxpool.Pool) portsrepo.TradeRepositoryWithTx {
	return &PgxTradeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTradeRepository implements portsrepo.TradeRepositoryWithTx
var _ portsrepo.TradeRepositoryWithTx = (*PgxTradeRepository)(nil)

func scanTrade(row rowScanner) (*domain.Trade, error) {
	var m models.Trade
	if err := row.Scan(
		&m.TradeID,
		&m.MemberID,
		&m.TradeType,
		&m.Quantity,
		&m.RateAtTrade,
		&m.TotalAmount,
		&m.Status,
		&m.GoldRateID,
		&m.InitiatedBy,
		&m.InitiatedByRole,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.CancelledBy,
		&m.CancelledAt,
		&m.CancelReason,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	trade := mapping.ToDomainTrade(m)
	return &trade, nil
}

func (r *PgxTradeRepository) findOne(ctx context.Context, q querier, query string, tradeID string) (*domain.Trade, error) {
	trade, err := scanTrade(q.QueryRow(ctx, query, tradeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find trade %s: %w", tradeID, err)
	}
	return trade, nil
}

func (r *PgxTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	m := mapping.ToModelTrade(trade)
	query := `
		INSERT INTO trades (` + tradeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TradeID,
		m.MemberID,
		m.TradeType,
		m.Quantity,
		m.RateAtTrade,
		m.TotalAmount,
		m.Status,
		m.GoldRateID,
		m.InitiatedBy,
		m.InitiatedByRole,
		m.ApprovedBy,
		m.ApprovedAt,
		m.CancelledBy,
		m.CancelledAt,
		m.CancelReason,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save trade: %w", err)
	}
	return nil
}

func (r *PgxTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1;`, tradeID)
}

// FindTradeByIDForUpdate locks the trade row until tx ends.
func (r *PgxTradeRepository) FindTradeByIDForUpdate(ctx context.Context, tx pgx.Tx, tradeID string) (*domain.Trade, error) {
	return r.findOne(ctx, tx, `SELECT `+tradeColumns+` FROM trades WHERE trade_id = $1 FOR UPDATE;`, tradeID)
}

// ListTrades returns trades newest first. The next token encodes the
// (created_at, trade_id) of the last row returned.
func (r *PgxTradeRepository) ListTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	conditions := []string{}
	args := []any{}
	addCondition := func(clause string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.MemberID != "" {
		addCondition("member_id = $%d", filter.MemberID)
	}
	if filter.Status != "" {
		addCondition("status = $%d", string(filter.Status))
	}
	if filter.TradeType != "" {
		addCondition("trade_type = $%d", string(filter.TradeType))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		createdAt, tradeID, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		args = append(args, createdAt, tradeID)
		conditions = append(conditions, fmt.Sprintf("(created_at, trade_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	// One extra row tells us whether another page exists.
	args = append(args, limit+1)
	query := fmt.Sprintf(`SELECT %s FROM trades %s ORDER BY created_at DESC, trade_id DESC LIMIT $%d;`,
		tradeColumns, where, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	trades := []domain.Trade{}
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan trade row: %w", err)
		}
		trades = append(trades, *trade)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating trade rows: %w", err)
	}

	var nextToken *string
	if len(trades) > limit {
		trades = trades[:limit]
		last := trades[len(trades)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TradeID)
		nextToken = &token
	}
	return trades, nextToken, nil
}

func (r *PgxTradeRepository) UpdateTradeStatusInTx(ctx context.Context, tx pgx.Tx, trade domain.Trade) error {
	m := mapping.ToModelTrade(trade)
	query := `
		UPDATE trades
		SET status = $1, approved_by = $2, approved_at = $3,
			cancelled_by = $4, cancelled_at = $5, cancel_reason = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE trade_id = $9;
	`
	tag, err := tx.Exec(ctx, query,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.CancelledBy,
		m.CancelledAt,
		m.CancelReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.TradeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade %s: %w", m.TradeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

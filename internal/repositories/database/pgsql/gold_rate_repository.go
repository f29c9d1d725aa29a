package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/utils/mapping"
)

const goldRateColumns = `gold_rate_id, buy_price, sell_price, is_active, effective_date,
	created_at, created_by, last_updated_at, last_updated_by`

// goldRateActivationLock is the advisory lock key taken while a new rate is activated.
const goldRateActivationLock int64 = 0x676f6c6472617465

type PgxGoldRateRepository struct {
	BaseRepository
}

func newPgxGoldRateRepository(pool *pgxpool.Pool) portsrepo.GoldRateRepositoryFacade {
	return &PgxGoldRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxGoldRateRepository implements portsrepo.GoldRateRepositoryFacade
var _ portsrepo.GoldRateRepositoryFacade = (*PgxGoldRateRepository)(nil)

func scanGoldRate(row rowScanner) (*domain.GoldRate, error) {
	var m models.GoldRate
	if err := row.Scan(
		&m.GoldRateID,
		&m.BuyPrice,
		&m.SellPrice,
		&m.IsActive,
		&m.EffectiveDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	rate := mapping.ToDomainGoldRate(m)
	return &rate, nil
}

// ActivateGoldRate retires the current rate and inserts the new one in a single
// transaction. Activations are serialized with an advisory lock; the partial
// unique index on is_active backs the single-active-rate rule.
func (r *PgxGoldRateRepository) ActivateGoldRate(ctx context.Context, rate domain.GoldRate) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, goldRateActivationLock); err != nil {
		return fmt.Errorf("failed to acquire gold rate activation lock: %w", err)
	}

	m := mapping.ToModelGoldRate(rate)
	deactivate := `
		UPDATE gold_rates
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE is_active;
	`
	if _, err := tx.Exec(ctx, deactivate, m.CreatedAt, m.CreatedBy); err != nil {
		return fmt.Errorf("failed to deactivate gold rates: %w", err)
	}

	insert := `
		INSERT INTO gold_rates (gold_rate_id, buy_price, sell_price, is_active, effective_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, TRUE, $4, $5, $6, $7, $8);
	`
	if _, err := tx.Exec(ctx, insert,
		m.GoldRateID,
		m.BuyPrice,
		m.SellPrice,
		m.EffectiveDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: another gold rate is already active", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert gold rate: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxGoldRateRepository) FindActiveGoldRate(ctx context.Context) (*domain.GoldRate, error) {
	query := `SELECT ` + goldRateColumns + ` FROM gold_rates WHERE is_active;`
	rate, err := scanGoldRate(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active gold rate: %w", err)
	}
	return rate, nil
}

func (r *PgxGoldRateRepository) FindGoldRateByID(ctx context.Context, goldRateID string) (*domain.GoldRate, error) {
	query := `SELECT ` + goldRateColumns + ` FROM gold_rates WHERE gold_rate_id = $1;`
	rate, err := scanGoldRate(r.Pool.QueryRow(ctx, query, goldRateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find gold rate %s: %w", goldRateID, err)
	}
	return rate, nil
}

func (r *PgxGoldRateRepository) ListGoldRates(ctx context.Context, limit int, offset int) ([]domain.GoldRate, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM gold_rates;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count gold rates: %w", err)
	}

	query := `SELECT ` + goldRateColumns + `
		FROM gold_rates
		ORDER BY created_at DESC, gold_rate_id DESC
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query gold rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.GoldRate{}
	for rows.Next() {
		rate, err := scanGoldRate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan gold rate row: %w", err)
		}
		rates = append(rates, *rate)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating gold rate rows: %w", err)
	}
	return rates, total, nil
}

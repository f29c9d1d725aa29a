package repositories

import (
	"context"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// GoldRateReader defines read operations for gold rate data
type GoldRateReader interface {
	// FindActiveGoldRate retrieves the single active rate, or apperrors.ErrNotFound.
	FindActiveGoldRate(ctx context.Context) (*domain.GoldRate, error)

	// FindGoldRateByID retrieves a rate, active or historical.
	FindGoldRateByID(ctx context.Context, goldRateID string) (*domain.GoldRate, error)

	// ListGoldRates retrieves the rate history newest first, with the total count.
	ListGoldRates(ctx context.Context, limit int, offset int) ([]domain.GoldRate, int, error)
}

// GoldRateWriter defines write operations for gold rate data
type GoldRateWriter interface {
	// ActivateGoldRate deactivates every existing rate and inserts rate as the
	// active one, atomically.
	ActivateGoldRate(ctx context.Context, rate domain.GoldRate) error
}

// GoldRateRepositoryFacade combines all gold rate-related repository interfaces
type GoldRateRepositoryFacade interface {
	GoldRateReader
	GoldRateWriter
}

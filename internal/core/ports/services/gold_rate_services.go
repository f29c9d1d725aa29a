package services

import (
	"context"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

// GoldRateReaderSvc defines read operations for gold rates
type GoldRateReaderSvc interface {
	// GetActiveGoldRate returns the active rate, or apperrors.ErrNotFound.
	GetActiveGoldRate(ctx context.Context) (*domain.GoldRate, error)

	// GetGoldRateByID returns a rate from the history.
	GetGoldRateByID(ctx context.Context, goldRateID string) (*domain.GoldRate, error)

	// ListGoldRates returns the history newest first with the total count.
	ListGoldRates(ctx context.Context, params dto.PageParams) ([]domain.GoldRate, int, error)
}

// GoldRateWriterSvc defines write operations for gold rates
type GoldRateWriterSvc interface {
	// CreateGoldRate validates and publishes a new active rate, retiring the previous one.
	CreateGoldRate(ctx context.Context, req dto.CreateGoldRateRequest, creatorID string) (*domain.GoldRate, error)
}

// GoldRateSvcFacade combines all gold rate-related service interfaces
type GoldRateSvcFacade interface {
	GoldRateReaderSvc
	GoldRateWriterSvc
}

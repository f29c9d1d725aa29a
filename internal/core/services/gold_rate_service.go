package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

type goldRateService struct {
	BaseService
	goldRateRepo portsrepo.GoldRateRepositoryFacade
}

// GoldRateServiceOption is a functional option for configuring the gold rate service
type GoldRateServiceOption func(*goldRateService)

// WithGoldRateClock sets the clock used for audit timestamps and default effective dates.
func WithGoldRateClock(clock func() time.Time) GoldRateServiceOption {
	return func(s *goldRateService) {
		s.Clock = clock
	}
}

// NewGoldRateService creates the gold rate service.
func NewGoldRateService(goldRateRepo portsrepo.GoldRateRepositoryFacade, options ...GoldRateServiceOption) portssvc.GoldRateSvcFacade {
	s := &goldRateService{goldRateRepo: goldRateRepo}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// CreateGoldRate validates the price pair before touching storage, then
// activates the new rate.
func (s *goldRateService) CreateGoldRate(ctx context.Context, req dto.CreateGoldRateRequest, creatorID string) (*domain.GoldRate, error) {
	switch {
	case !req.BuyPrice.IsPositive():
		return nil, apperrors.NewValidationError("buyPrice must be positive")
	case !req.SellPrice.IsPositive():
		return nil, apperrors.NewValidationError("sellPrice must be positive")
	case req.SellPrice.LessThan(req.BuyPrice):
		return nil, apperrors.NewValidationError("sellPrice must be greater than or equal to buyPrice")
	case tooPrecise(req.BuyPrice) || tooPrecise(req.SellPrice):
		return nil, apperrors.NewValidationError("prices support at most 4 decimal places")
	}

	now := s.Now()
	effective := now
	if req.EffectiveDate != nil && !req.EffectiveDate.IsZero() {
		effective = req.EffectiveDate.UTC()
	}

	rate := domain.GoldRate{
		GoldRateID:    uuid.NewString(),
		BuyPrice:      req.BuyPrice,
		SellPrice:     req.SellPrice,
		IsActive:      true,
		EffectiveDate: effective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.goldRateRepo.ActivateGoldRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to activate gold rate")
		return nil, fmt.Errorf("failed to create gold rate: %w", err)
	}

	s.LogInfo(ctx, "Gold rate activated",
		slog.String("gold_rate_id", rate.GoldRateID),
		slog.String("buy_price", rate.BuyPrice.String()),
		slog.String("sell_price", rate.SellPrice.String()),
		slog.String("created_by", creatorID))
	return &rate, nil
}

func (s *goldRateService) GetActiveGoldRate(ctx context.Context) (*domain.GoldRate, error) {
	rate, err := s.goldRateRepo.FindActiveGoldRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("No active gold rate")
		}
		s.LogError(ctx, err, "Failed to get active gold rate")
		return nil, fmt.Errorf("failed to get active gold rate: %w", err)
	}
	return rate, nil
}

func (s *goldRateService) GetGoldRateByID(ctx context.Context, goldRateID string) (*domain.GoldRate, error) {
	rate, err := s.goldRateRepo.FindGoldRateByID(ctx, goldRateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Gold rate not found")
		}
		s.LogError(ctx, err, "Failed to get gold rate", slog.String("gold_rate_id", goldRateID))
		return nil, fmt.Errorf("failed to get gold rate %s: %w", goldRateID, err)
	}
	return rate, nil
}

func (s *goldRateService) ListGoldRates(ctx context.Context, params dto.PageParams) ([]domain.GoldRate, int, error) {
	rates, total, err := s.goldRateRepo.ListGoldRates(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list gold rates")
		return nil, 0, fmt.Errorf("failed to list gold rates: %w", err)
	}
	return rates, total, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
)

type statisticsService struct {
	BaseService
	statsRepo    portsrepo.StatisticsRepository
	memberRepo   portsrepo.MemberReader
	goldRateRepo portsrepo.GoldRateReader
}

// NewStatisticsService creates the dashboard statistics service.
func NewStatisticsService(statsRepo portsrepo.StatisticsRepository, memberRepo portsrepo.MemberReader, goldRateRepo portsrepo.GoldRateReader) portssvc.StatisticsSvc {
	return &statisticsService{statsRepo: statsRepo, memberRepo: memberRepo, goldRateRepo: goldRateRepo}
}

// activeRate returns nil without error when no rate has been published yet.
func (s *statisticsService) activeRate(ctx context.Context) (*domain.GoldRate, error) {
	rate, err := s.goldRateRepo.FindActiveGoldRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active gold rate: %w", err)
	}
	return rate, nil
}

// valuation prices holdings at what the business would pay to buy them back.
func valuation(holdings decimal.Decimal, rate *domain.GoldRate) *decimal.Decimal {
	if rate == nil {
		return nil
	}
	v := domain.TotalFor(holdings, rate.SellPrice)
	return &v
}

func (s *statisticsService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	members, err := s.statsRepo.GetMemberCounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate members")
		return nil, err
	}
	trades, err := s.statsRepo.GetTradeStats(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate trades")
		return nil, err
	}
	rate, err := s.activeRate(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load active rate for dashboard")
		return nil, err
	}

	return &domain.DashboardStats{
		Members:       *members,
		Trades:        *trades,
		ActiveRate:    rate,
		HoldingsValue: valuation(members.GoldHoldings, rate),
	}, nil
}

func (s *statisticsService) GetMemberStats(ctx context.Context, memberID string) (*domain.MemberStats, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Member not found")
		}
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	trades, err := s.statsRepo.GetTradeStats(ctx, memberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate member trades")
		return nil, err
	}
	rate, err := s.activeRate(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.MemberStats{
		MemberID:      member.MemberID,
		GoldHoldings:  member.GoldHoldings,
		Trades:        *trades,
		ActiveRate:    rate,
		HoldingsValue: valuation(member.GoldHoldings, rate),
	}, nil
}

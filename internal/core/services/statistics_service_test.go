package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTradeStats() *domain.TradeStats {
	return &domain.TradeStats{
		Pending:   2,
		Completed: 3,
		Cancelled: 1,
		Bought:    domain.TradeVolume{Quantity: decimal.NewFromInt(5), Amount: decimal.NewFromInt(30000)},
		Sold:      domain.TradeVolume{Quantity: decimal.NewFromInt(1), Amount: decimal.NewFromInt(6100)},
	}
}

func TestGetDashboardStats_ValuesHoldingsAtSellPrice(t *testing.T) {
	ctx := context.Background()
	statsRepo := new(MockStatisticsRepository)
	rateRepo := new(MockGoldRateRepository)
	rate := &domain.GoldRate{GoldRateID: "r1", BuyPrice: decimal.NewFromInt(6000), SellPrice: decimal.RequireFromString("6100.50")}
	statsRepo.On("GetMemberCounts", ctx).Return(&domain.MemberCounts{Total: 4, Active: 3, GoldHoldings: decimal.NewFromInt(4)}, nil).Once()
	statsRepo.On("GetTradeStats", ctx, "").Return(sampleTradeStats(), nil).Once()
	rateRepo.On("FindActiveGoldRate", ctx).Return(rate, nil).Once()

	svc := services.NewStatisticsService(statsRepo, newMemStore(), rateRepo)
	stats, err := svc.GetDashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Members.Total)
	assert.Equal(t, int64(6), stats.Trades.Total())
	assert.Equal(t, rate, stats.ActiveRate)
	require.NotNil(t, stats.HoldingsValue)
	assert.True(t, stats.HoldingsValue.Equal(decimal.NewFromInt(24402)))
	statsRepo.AssertExpectations(t)
}

func TestGetDashboardStats_NoActiveRate(t *testing.T) {
	ctx := context.Background()
	statsRepo := new(MockStatisticsRepository)
	rateRepo := new(MockGoldRateRepository)
	statsRepo.On("GetMemberCounts", ctx).Return(&domain.MemberCounts{GoldHoldings: decimal.Zero}, nil)
	statsRepo.On("GetTradeStats", ctx, "").Return(&domain.TradeStats{}, nil)
	rateRepo.On("FindActiveGoldRate", ctx).Return(nil, apperrors.ErrNotFound)

	stats, err := services.NewStatisticsService(statsRepo, newMemStore(), rateRepo).GetDashboardStats(ctx)

	require.NoError(t, err)
	assert.Nil(t, stats.ActiveRate)
	assert.Nil(t, stats.HoldingsValue)
}

func TestGetDashboardStats_RepositoryError(t *testing.T) {
	ctx := context.Background()
	statsRepo := new(MockStatisticsRepository)
	dbErr := errors.New("timeout")
	statsRepo.On("GetMemberCounts", ctx).Return(nil, dbErr)

	_, err := services.NewStatisticsService(statsRepo, newMemStore(), new(MockGoldRateRepository)).GetDashboardStats(ctx)

	assert.ErrorIs(t, err, dbErr)
	statsRepo.AssertNotCalled(t, "GetTradeStats", ctx, "")
}

func TestGetMemberStats(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addMember("m1", "2.5", domain.MemberActive)
	statsRepo := new(MockStatisticsRepository)
	rateRepo := new(MockGoldRateRepository)
	statsRepo.On("GetTradeStats", ctx, "m1").Return(sampleTradeStats(), nil).Once()
	rateRepo.On("FindActiveGoldRate", ctx).Return(&domain.GoldRate{SellPrice: decimal.NewFromInt(6000)}, nil)

	svc := services.NewStatisticsService(statsRepo, store, rateRepo)
	stats, err := svc.GetMemberStats(ctx, "m1")

	require.NoError(t, err)
	assert.Equal(t, "m1", stats.MemberID)
	assert.True(t, stats.GoldHoldings.Equal(decimal.RequireFromString("2.5")))
	require.NotNil(t, stats.HoldingsValue)
	assert.True(t, stats.HoldingsValue.Equal(decimal.NewFromInt(15000)))

	_, err = svc.GetMemberStats(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

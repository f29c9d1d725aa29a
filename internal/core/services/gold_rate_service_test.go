package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// --- Test Suite ---
type GoldRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockGoldRateRepository
	service      portssvc.GoldRateSvcFacade
}

func (suite *GoldRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockGoldRateRepository)
	suite.service = services.NewGoldRateService(suite.mockRateRepo, services.WithGoldRateClock(fixedClock))
}

func TestGoldRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoldRateServiceTestSuite))
}

func (suite *GoldRateServiceTestSuite) TestCreateGoldRate_Success() {
	ctx := context.Background()
	adminID := uuid.NewString()
	req := dto.CreateGoldRateRequest{
		BuyPrice:  decimal.RequireFromString("6000.50"),
		SellPrice: decimal.RequireFromString("6100.25"),
	}

	suite.mockRateRepo.On("ActivateGoldRate", ctx, mock.MatchedBy(func(r domain.GoldRate) bool {
		return r.IsActive && r.BuyPrice.Equal(req.BuyPrice) && r.SellPrice.Equal(req.SellPrice) && r.CreatedBy == adminID
	})).Return(nil).Once()

	rate, err := suite.service.CreateGoldRate(ctx, req, adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(rate.GoldRateID)
	suite.True(rate.IsActive)
	suite.Equal(fixedNow, rate.EffectiveDate, "effective date defaults to now")
	suite.Equal(adminID, rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *GoldRateServiceTestSuite) TestCreateGoldRate_UsesGivenEffectiveDate() {
	ctx := context.Background()
	effective := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateGoldRateRequest{
		BuyPrice:      decimal.NewFromInt(6000),
		SellPrice:     decimal.NewFromInt(6000),
		EffectiveDate: &effective,
	}
	suite.mockRateRepo.On("ActivateGoldRate", ctx, mock.AnythingOfType("domain.GoldRate")).Return(nil).Once()

	rate, err := suite.service.CreateGoldRate(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(effective, rate.EffectiveDate)
}

func (suite *GoldRateServiceTestSuite) TestCreateGoldRate_ValidationNeverTouchesStorage() {
	tests := []struct {
		name string
		buy  string
		sell string
		msg  string
	}{
		{name: "sell below buy", buy: "6100", sell: "6000", msg: "sellPrice must be greater than or equal to buyPrice"},
		{name: "zero buy", buy: "0", sell: "6000", msg: "buyPrice must be positive"},
		{name: "negative sell", buy: "6000", sell: "-1", msg: "sellPrice must be positive"},
		{name: "too precise", buy: "6000.12345", sell: "6100", msg: "prices support at most 4 decimal places"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := dto.CreateGoldRateRequest{
				BuyPrice:  decimal.RequireFromString(tt.buy),
				SellPrice: decimal.RequireFromString(tt.sell),
			}
			rate, err := suite.service.CreateGoldRate(context.Background(), req, "admin-1")

			suite.Require().Error(err)
			suite.Nil(rate)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Contains(err.Error(), tt.msg)
		})
	}
	suite.mockRateRepo.AssertNotCalled(suite.T(), "ActivateGoldRate", mock.Anything, mock.Anything)
}

func (suite *GoldRateServiceTestSuite) TestCreateGoldRate_RepositoryError() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	suite.mockRateRepo.On("ActivateGoldRate", ctx, mock.AnythingOfType("domain.GoldRate")).Return(dbErr).Once()

	rate, err := suite.service.CreateGoldRate(ctx, dto.CreateGoldRateRequest{
		BuyPrice:  decimal.NewFromInt(1),
		SellPrice: decimal.NewFromInt(2),
	}, "admin-1")

	suite.Nil(rate)
	suite.ErrorIs(err, dbErr)
}

func (suite *GoldRateServiceTestSuite) TestGetActiveGoldRate_NoneActive() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindActiveGoldRate", ctx).Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.GetActiveGoldRate(ctx)

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoldRateServiceTestSuite) TestGetGoldRateByID_NotFound() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindGoldRateByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.GetGoldRateByID(ctx, "missing")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoldRateServiceTestSuite) TestListGoldRates() {
	ctx := context.Background()
	rates := []domain.GoldRate{{GoldRateID: "r2"}, {GoldRateID: "r1"}}
	suite.mockRateRepo.On("ListGoldRates", ctx, 10, 5).Return(rates, 12, nil).Once()

	got, total, err := suite.service.ListGoldRates(ctx, dto.PageParams{Limit: 10, Offset: 5})

	suite.Require().NoError(err)
	suite.Equal(rates, got)
	suite.Equal(12, total)
}

func TestCreateGoldRate_ExactlyOneActiveAfterEachCreate(t *testing.T) {
	store := newMemStore()
	svc := services.NewGoldRateService(store)
	ctx := context.Background()

	var last *domain.GoldRate
	for i := 1; i <= 5; i++ {
		rate, err := svc.CreateGoldRate(ctx, dto.CreateGoldRateRequest{
			BuyPrice:  decimal.NewFromInt(int64(6000 + i)),
			SellPrice: decimal.NewFromInt(int64(6100 + i)),
		}, "admin-1")
		require.NoError(t, err)
		assert.Equal(t, 1, store.activeRateCount(), "after create %d", i)
		last = rate
	}

	active, err := svc.GetActiveGoldRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, last.GoldRateID, active.GoldRateID)

	_, total, err := svc.ListGoldRates(ctx, dto.PageParams{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 5, total, "history keeps every rate")

	// A rejected rate leaves the active one in place.
	_, err = svc.CreateGoldRate(ctx, dto.CreateGoldRateRequest{
		BuyPrice:  decimal.NewFromInt(7000),
		SellPrice: decimal.NewFromInt(6900),
	}, "admin-1")
	require.ErrorIs(t, err, apperrors.ErrValidation)
	active, err = svc.GetActiveGoldRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, last.GoldRateID, active.GoldRateID)
	assert.Equal(t, 1, store.activeRateCount())
}

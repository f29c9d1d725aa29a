package services_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock GoldRateRepository ---
type MockGoldRateRepository struct {
	mock.Mock
}

func (m *MockGoldRateRepository) ActivateGoldRate(ctx context.Context, rate domain.GoldRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockGoldRateRepository) FindActiveGoldRate(ctx context.Context) (*domain.GoldRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldRate), args.Error(1)
}

func (m *MockGoldRateRepository) FindGoldRateByID(ctx context.Context, goldRateID string) (*domain.GoldRate, error) {
	args := m.Called(ctx, goldRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldRate), args.Error(1)
}

func (m *MockGoldRateRepository) ListGoldRates(ctx context.Context, limit int, offset int) ([]domain.GoldRate, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.GoldRate), args.Int(1), args.Error(2)
}

// --- Mock TradeRepository ---
type MockTradeRepository struct {
	mock.Mock
}

func (m *MockTradeRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockTradeRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTradeRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTradeRepository) SaveTrade(ctx context.Context, trade domain.Trade) error {
	args := m.Called(ctx, trade)
	return args.Error(0)
}

func (m *MockTradeRepository) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) ListTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, *string, error) {
	args := m.Called(ctx, filter)
	var trades []domain.Trade
	if args.Get(0) != nil {
		trades = args.Get(0).([]domain.Trade)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return trades, next, args.Error(2)
}

func (m *MockTradeRepository) FindTradeByIDForUpdate(ctx context.Context, tx pgx.Tx, tradeID string) (*domain.Trade, error) {
	args := m.Called(ctx, tx, tradeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeRepository) UpdateTradeStatusInTx(ctx context.Context, tx pgx.Tx, trade domain.Trade) error {
	args := m.Called(ctx, tx, trade)
	return args.Error(0)
}

// --- Mock StatisticsRepository ---
type MockStatisticsRepository struct {
	mock.Mock
}

func (m *MockStatisticsRepository) GetMemberCounts(ctx context.Context) (*domain.MemberCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberCounts), args.Error(1)
}

func (m *MockStatisticsRepository) GetTradeStats(ctx context.Context, memberID string) (*domain.TradeStats, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TradeStats), args.Error(1)
}

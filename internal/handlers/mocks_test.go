package handlers_test

import (
	"context"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AdminAuthService ---
type MockAdminAuthService struct {
	mock.Mock
}

func (m *MockAdminAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Admin, *domain.TokenPair, error) {
	args := m.Called(ctx, req)
	admin, _ := args.Get(0).(*domain.Admin)
	pair, _ := args.Get(1).(*domain.TokenPair)
	return admin, pair, args.Error(2)
}

func (m *MockAdminAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.Admin, *domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	admin, _ := args.Get(0).(*domain.Admin)
	pair, _ := args.Get(1).(*domain.TokenPair)
	return admin, pair, args.Error(2)
}

func (m *MockAdminAuthService) Logout(ctx context.Context, adminID string) error {
	args := m.Called(ctx, adminID)
	return args.Error(0)
}

func (m *MockAdminAuthService) GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminAuthService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest, creatorID string) (*domain.Admin, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// --- Mock MemberAuthService ---
type MockMemberAuthService struct {
	mock.Mock
}

func (m *MockMemberAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Member, *domain.TokenPair, error) {
	args := m.Called(ctx, req)
	member, _ := args.Get(0).(*domain.Member)
	pair, _ := args.Get(1).(*domain.TokenPair)
	return member, pair, args.Error(2)
}

func (m *MockMemberAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.Member, *domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	member, _ := args.Get(0).(*domain.Member)
	pair, _ := args.Get(1).(*domain.TokenPair)
	return member, pair, args.Error(2)
}

func (m *MockMemberAuthService) Logout(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MockMemberAuthService) Register(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// --- Mock MemberService ---
type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, int, error) {
	args := m.Called(ctx, params)
	members, _ := args.Get(0).([]domain.Member)
	return members, args.Int(1), args.Error(2)
}

func (m *MockMemberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorID string) (*domain.Member, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updaterID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID, status, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// --- Mock GoldRateService ---
type MockGoldRateService struct {
	mock.Mock
}

func (m *MockGoldRateService) GetActiveGoldRate(ctx context.Context) (*domain.GoldRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldRate), args.Error(1)
}

func (m *MockGoldRateService) GetGoldRateByID(ctx context.Context, goldRateID string) (*domain.GoldRate, error) {
	args := m.Called(ctx, goldRateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldRate), args.Error(1)
}

func (m *MockGoldRateService) ListGoldRates(ctx context.Context, params dto.PageParams) ([]domain.GoldRate, int, error) {
	args := m.Called(ctx, params)
	rates, _ := args.Get(0).([]domain.GoldRate)
	return rates, args.Int(1), args.Error(2)
}

func (m *MockGoldRateService) CreateGoldRate(ctx context.Context, req dto.CreateGoldRateRequest, creatorID string) (*domain.GoldRate, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoldRate), args.Error(1)
}

// --- Mock TradeService ---
type MockTradeService struct {
	mock.Mock
}

func (m *MockTradeService) tradeResult(args mock.Arguments) (*domain.Trade, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trade), args.Error(1)
}

func (m *MockTradeService) GetTradeByID(ctx context.Context, tradeID string, actor domain.Actor) (*domain.Trade, error) {
	return m.tradeResult(m.Called(ctx, tradeID, actor))
}

func (m *MockTradeService) ListTrades(ctx context.Context, params dto.ListTradesParams, actor domain.Actor) ([]domain.Trade, *string, error) {
	args := m.Called(ctx, params, actor)
	trades, _ := args.Get(0).([]domain.Trade)
	next, _ := args.Get(1).(*string)
	return trades, next, args.Error(2)
}

func (m *MockTradeService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest, actor domain.Actor) (*domain.Trade, error) {
	return m.tradeResult(m.Called(ctx, req, actor))
}

func (m *MockTradeService) ApproveTrade(ctx context.Context, tradeID string, actor domain.Actor) (*domain.Trade, error) {
	return m.tradeResult(m.Called(ctx, tradeID, actor))
}

func (m *MockTradeService) RejectTrade(ctx context.Context, tradeID string, reason *string, actor domain.Actor) (*domain.Trade, error) {
	return m.tradeResult(m.Called(ctx, tradeID, reason, actor))
}

func (m *MockTradeService) CancelTrade(ctx context.Context, tradeID string, reason *string, actor domain.Actor) (*domain.Trade, error) {
	return m.tradeResult(m.Called(ctx, tradeID, reason, actor))
}

// --- Mock StatisticsService ---
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockStatisticsService) GetMemberStats(ctx context.Context, memberID string) (*domain.MemberStats, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberStats), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.AdminAuthSvc      = (*MockAdminAuthService)(nil)
	_ portssvc.MemberAuthSvc     = (*MockMemberAuthService)(nil)
	_ portssvc.MemberSvcFacade   = (*MockMemberService)(nil)
	_ portssvc.GoldRateSvcFacade = (*MockGoldRateService)(nil)
	_ portssvc.TradeSvcFacade    = (*MockTradeService)(nil)
	_ portssvc.StatisticsSvc     = (*MockStatisticsService)(nil)
)

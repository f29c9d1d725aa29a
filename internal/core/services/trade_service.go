package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

type tradeService struct {
	BaseService
	tradeRepo    portsrepo.TradeRepositoryWithTx
	memberRepo   portsrepo.MemberRepositoryFacade
	goldRateRepo portsrepo.GoldRateReader
}

// TradeServiceOption is a functional option for configuring the trade service
type TradeServiceOption func(*tradeService)

// WithTradeClock sets the clock used for trade timestamps.
func WithTradeClock(clock func() time.Time) TradeServiceOption {
	return func(s *tradeService) {
		s.Clock = clock
	}
}

// NewTradeService creates the trade service.
func NewTradeService(
	tradeRepo portsrepo.TradeRepositoryWithTx,
	memberRepo portsrepo.MemberRepositoryFacade,
	goldRateRepo portsrepo.GoldRateReader,
	options ...TradeServiceOption,
) portssvc.TradeSvcFacade {
	s := &tradeService{
		tradeRepo:    tradeRepo,
		memberRepo:   memberRepo,
		goldRateRepo: goldRateRepo,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func tradeNotFound() error {
	return apperrors.NewNotFoundError("Trade not found")
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return apperrors.NewForbiddenError("Only admins can change trade status")
	}
	return nil
}

// resolveTradeMember applies the role rules for who may trade for whom:
// members create SELL trades for themselves only, admins any type for any member.
func resolveTradeMember(req dto.CreateTradeRequest, actor domain.Actor) (string, error) {
	if actor.IsAdmin() {
		if req.MemberID == "" {
			return "", apperrors.NewValidationError("memberID is required")
		}
		return req.MemberID, nil
	}
	if req.TradeType != domain.TradeSell {
		return "", apperrors.NewForbiddenError("Members can only create SELL trades")
	}
	if req.MemberID != "" && req.MemberID != actor.ID {
		return "", apperrors.NewForbiddenError("Members can only create trades for themselves")
	}
	return actor.ID, nil
}

func (s *tradeService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest, actor domain.Actor) (*domain.Trade, error) {
	if !req.TradeType.IsValid() {
		return nil, apperrors.NewValidationError("tradeType must be BUY or SELL")
	}
	if !req.Quantity.IsPositive() {
		return nil, apperrors.NewValidationError("quantity must be positive")
	}
	if tooPrecise(req.Quantity) {
		return nil, apperrors.NewValidationError("quantity supports at most 4 decimal places")
	}

	memberID, err := resolveTradeMember(req, actor)
	if err != nil {
		s.LogWarn(ctx, "Trade creation refused", slog.String("reason", err.Error()))
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Member not found")
		}
		s.LogError(ctx, err, "Failed to load member for trade", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to load member: %w", err)
	}
	if !member.IsActive() {
		return nil, apperrors.NewValidationError("Member account is not active")
	}

	rate, err := s.goldRateRepo.FindActiveGoldRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("No active gold rate; trades cannot be created")
		}
		s.LogError(ctx, err, "Failed to load active gold rate for trade")
		return nil, fmt.Errorf("failed to load active gold rate: %w", err)
	}

	if req.TradeType == domain.TradeSell && member.GoldHoldings.LessThan(req.Quantity) {
		return nil, fmt.Errorf("%w: holdings of %s are less than %s",
			apperrors.ErrInsufficientHoldings, member.GoldHoldings.String(), req.Quantity.String())
	}

	var notes *string
	if req.Notes != nil {
		if n := strings.TrimSpace(*req.Notes); n != "" {
			notes = &n
		}
	}

	now := s.Now()
	price := rate.PriceFor(req.TradeType)
	trade := domain.Trade{
		TradeID:         uuid.NewString(),
		MemberID:        member.MemberID,
		TradeType:       req.TradeType,
		Quantity:        req.Quantity,
		RateAtTrade:     price,
		TotalAmount:     domain.TotalFor(req.Quantity, price),
		Status:          domain.TradePending,
		GoldRateID:      rate.GoldRateID,
		InitiatedBy:     actor.ID,
		InitiatedByRole: actor.Role,
		Notes:           notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.ID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.ID,
		},
	}

	if err := s.tradeRepo.SaveTrade(ctx, trade); err != nil {
		s.LogError(ctx, err, "Failed to save trade")
		return nil, fmt.Errorf("failed to create trade: %w", err)
	}

	s.LogInfo(ctx, "Trade created",
		slog.String("trade_id", trade.TradeID),
		slog.String("member_id", trade.MemberID),
		slog.String("trade_type", string(trade.TradeType)),
		slog.String("quantity", trade.Quantity.String()))
	return &trade, nil
}

func (s *tradeService) GetTradeByID(ctx context.Context, tradeID string, actor domain.Actor) (*domain.Trade, error) {
	trade, err := s.tradeRepo.FindTradeByID(ctx, tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, tradeNotFound()
		}
		s.LogError(ctx, err, "Failed to get trade", slog.String("trade_id", tradeID))
		return nil, fmt.Errorf("failed to get trade %s: %w", tradeID, err)
	}
	// Members must not learn whether other members' trades exist.
	if !actor.IsAdmin() && trade.MemberID != actor.ID {
		return nil, tradeNotFound()
	}
	return trade, nil
}

func (s *tradeService) ListTrades(ctx context.Context, params dto.ListTradesParams, actor domain.Actor) ([]domain.Trade, *string, error) {
	filter := domain.TradeFilter{
		MemberID:  params.MemberID,
		Status:    params.Status,
		TradeType: params.TradeType,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if !actor.IsAdmin() {
		filter.MemberID = actor.ID
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, nil, apperrors.NewValidationError("invalid status filter")
	}
	if filter.TradeType != "" && !filter.TradeType.IsValid() {
		return nil, nil, apperrors.NewValidationError("invalid tradeType filter")
	}

	trades, nextToken, err := s.tradeRepo.ListTrades(ctx, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to list trades")
		return nil, nil, fmt.Errorf("failed to list trades: %w", err)
	}
	return trades, nextToken, nil
}

func (s *tradeService) ApproveTrade(ctx context.Context, tradeID string, actor domain.Actor) (*domain.Trade, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.transition(ctx, tradeID, actor, "approve", func(t *domain.Trade, now time.Time) (decimal.Decimal, error) {
		return t.Approve(actor.ID, now)
	})
}

func (s *tradeService) RejectTrade(ctx context.Context, tradeID string, reason *string, actor domain.Actor) (*domain.Trade, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.transition(ctx, tradeID, actor, "reject", func(t *domain.Trade, now time.Time) (decimal.Decimal, error) {
		return decimal.Zero, t.Reject(actor.ID, reason, now)
	})
}

func (s *tradeService) CancelTrade(ctx context.Context, tradeID string, reason *string, actor domain.Actor) (*domain.Trade, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.transition(ctx, tradeID, actor, "cancel", func(t *domain.Trade, now time.Time) (decimal.Decimal, error) {
		return t.Cancel(actor.ID, reason, now)
	})
}

// transition runs one status change inside a transaction. The trade row and
// then the member row are locked, so the holdings delta of a transition is
// applied at most once even under concurrent requests.
func (s *tradeService) transition(
	ctx context.Context,
	tradeID string,
	actor domain.Actor,
	action string,
	apply func(t *domain.Trade, now time.Time) (decimal.Decimal, error),
) (*domain.Trade, error) {
	logger := s.GetLogger(ctx).With(slog.String("trade_id", tradeID), slog.String("action", action))

	tx, err := s.tradeRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin trade transition")
		return nil, err
	}
	defer s.tradeRepo.Rollback(ctx, tx)

	trade, err := s.tradeRepo.FindTradeByIDForUpdate(ctx, tx, tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, tradeNotFound()
		}
		return nil, fmt.Errorf("failed to lock trade: %w", err)
	}

	member, err := s.memberRepo.FindMemberByIDForUpdate(ctx, tx, trade.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock member %s: %w", trade.MemberID, err)
	}

	now := s.Now()
	delta, err := apply(trade, now)
	if err != nil {
		logger.Warn("Trade transition refused", slog.String("error", err.Error()))
		return nil, err
	}

	if !delta.IsZero() {
		holdings, err := member.HoldingsAfter(delta)
		if err != nil {
			logger.Warn("Trade transition would make holdings negative", slog.String("error", err.Error()))
			return nil, err
		}
		if err := s.memberRepo.UpdateGoldHoldingsInTx(ctx, tx, member.MemberID, holdings, actor.ID, now); err != nil {
			return nil, fmt.Errorf("failed to update holdings: %w", err)
		}
	}

	if err := s.tradeRepo.UpdateTradeStatusInTx(ctx, tx, *trade); err != nil {
		return nil, fmt.Errorf("failed to update trade: %w", err)
	}

	if err := s.tradeRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit trade transition", slog.String("trade_id", tradeID))
		return nil, err
	}

	logger.Info("Trade status changed",
		slog.String("status", string(trade.Status)),
		slog.String("holdings_delta", delta.String()),
		slog.String("actor_id", actor.ID))
	return trade, nil
}

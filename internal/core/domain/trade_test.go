package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string {
	return &s
}

func TestTrade_HoldingsDelta(t *testing.T) {
	tests := []struct {
		name  string
		trade domain.Trade
		want  decimal.Decimal
	}{
		{
			name:  "buy adds quantity",
			trade: domain.Trade{TradeType: domain.TradeBuy, Quantity: decimal.RequireFromString("2.5")},
			want:  decimal.RequireFromString("2.5"),
		},
		{
			name:  "sell removes quantity",
			trade: domain.Trade{TradeType: domain.TradeSell, Quantity: decimal.RequireFromString("1.25")},
			want:  decimal.RequireFromString("-1.25"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.trade.HoldingsDelta()
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestTrade_Approve(t *testing.T) {
	now := time.Now()

	t.Run("pending buy completes", func(t *testing.T) {
		trade := domain.Trade{TradeType: domain.TradeBuy, Quantity: decimal.NewFromInt(3), Status: domain.TradePending}
		delta, err := trade.Approve("admin-1", now)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3).Equal(delta))
		assert.Equal(t, domain.TradeCompleted, trade.Status)
		require.NotNil(t, trade.ApprovedBy)
		assert.Equal(t, "admin-1", *trade.ApprovedBy)
		assert.Equal(t, now, *trade.ApprovedAt)
	})

	t.Run("completed trade cannot be approved again", func(t *testing.T) {
		trade := domain.Trade{TradeType: domain.TradeBuy, Quantity: decimal.NewFromInt(3), Status: domain.TradeCompleted}
		_, err := trade.Approve("admin-1", now)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})

	t.Run("cancelled trade cannot be approved", func(t *testing.T) {
		trade := domain.Trade{Status: domain.TradeCancelled}
		_, err := trade.Approve("admin-1", now)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	})
}

func TestTrade_Reject(t *testing.T) {
	now := time.Now()

	trade := domain.Trade{Status: domain.TradePending}
	require.NoError(t, trade.Reject("admin-1", stringPtr("price moved"), now))
	assert.Equal(t, domain.TradeCancelled, trade.Status)
	assert.Equal(t, "price moved", *trade.CancelReason)

	completed := domain.Trade{Status: domain.TradeCompleted}
	assert.ErrorIs(t, completed.Reject("admin-1", nil, now), apperrors.ErrInvalidTransition)
}

func TestTrade_Cancel(t *testing.T) {
	now := time.Now()
	qty := decimal.RequireFromString("4.2")

	tests := []struct {
		name      string
		trade     domain.Trade
		wantDelta decimal.Decimal
		wantErr   error
	}{
		{
			name:      "pending buy has no balance effect",
			trade:     domain.Trade{TradeType: domain.TradeBuy, Quantity: qty, Status: domain.TradePending},
			wantDelta: decimal.Zero,
		},
		{
			name:      "completed buy is reversed",
			trade:     domain.Trade{TradeType: domain.TradeBuy, Quantity: qty, Status: domain.TradeCompleted},
			wantDelta: qty.Neg(),
		},
		{
			name:      "completed sell is reversed",
			trade:     domain.Trade{TradeType: domain.TradeSell, Quantity: qty, Status: domain.TradeCompleted},
			wantDelta: qty,
		},
		{
			name:    "cancelled trade cannot be cancelled again",
			trade:   domain.Trade{TradeType: domain.TradeBuy, Quantity: qty, Status: domain.TradeCancelled},
			wantErr: apperrors.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, err := tt.trade.Cancel("admin-1", nil, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantDelta.Equal(delta), "want %s got %s", tt.wantDelta, delta)
			assert.Equal(t, domain.TradeCancelled, tt.trade.Status)
		})
	}
}

func TestTrade_CancelCompletedBuyOnlyOnce(t *testing.T) {
	now := time.Now()
	member := domain.Member{MemberID: "m-1", GoldHoldings: decimal.NewFromInt(10)}
	trade := domain.Trade{TradeType: domain.TradeBuy, Quantity: decimal.NewFromInt(4), Status: domain.TradePending}

	delta, err := trade.Approve("admin-1", now)
	require.NoError(t, err)
	member.GoldHoldings, err = member.HoldingsAfter(delta)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(14).Equal(member.GoldHoldings))

	delta, err = trade.Cancel("admin-1", nil, now)
	require.NoError(t, err)
	member.GoldHoldings, err = member.HoldingsAfter(delta)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(member.GoldHoldings))

	_, err = trade.Cancel("admin-1", nil, now)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.True(t, decimal.NewFromInt(10).Equal(member.GoldHoldings))
}

func TestMember_HoldingsAfter(t *testing.T) {
	member := domain.Member{MemberID: "m-1", GoldHoldings: decimal.NewFromInt(2)}

	next, err := member.HoldingsAfter(decimal.NewFromInt(-2))
	require.NoError(t, err)
	assert.True(t, next.IsZero())

	_, err = member.HoldingsAfter(decimal.RequireFromString("-2.001"))
	assert.ErrorIs(t, err, apperrors.ErrInsufficientHoldings)
}

func TestGoldRate_PriceFor(t *testing.T) {
	rate := domain.GoldRate{BuyPrice: decimal.NewFromInt(6000), SellPrice: decimal.NewFromInt(6100)}
	assert.True(t, rate.PriceFor(domain.TradeBuy).Equal(decimal.NewFromInt(6000)))
	assert.True(t, rate.PriceFor(domain.TradeSell).Equal(decimal.NewFromInt(6100)))
}

func TestTotalFor(t *testing.T) {
	got := domain.TotalFor(decimal.RequireFromString("1.333"), decimal.RequireFromString("6000.10"))
	assert.Equal(t, "7998.13", got.StringFixed(2))
}

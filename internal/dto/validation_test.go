package dto_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators_Decimal(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())
	require.NoError(t, dto.RegisterValidators(), "second call is a no-op")

	testCases := []struct {
		name    string
		req     dto.CreateTradeRequest
		wantErr bool
	}{
		{"positive", dto.CreateTradeRequest{TradeType: domain.TradeBuy, Quantity: decimal.RequireFromString("0.0001")}, false},
		{"zero", dto.CreateTradeRequest{TradeType: domain.TradeBuy, Quantity: decimal.Zero}, true},
		{"negative", dto.CreateTradeRequest{TradeType: domain.TradeSell, Quantity: decimal.NewFromInt(-2)}, true},
		{"unknown type", dto.CreateTradeRequest{TradeType: "HOLD", Quantity: decimal.NewFromInt(1)}, true},
		{"bad member id", dto.CreateTradeRequest{MemberID: "m1", TradeType: domain.TradeBuy, Quantity: decimal.NewFromInt(1)}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tc.req)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterValidators_GoldRate(t *testing.T) {
	require.NoError(t, dto.RegisterValidators())

	ok := dto.CreateGoldRateRequest{BuyPrice: decimal.NewFromInt(6000), SellPrice: decimal.NewFromInt(6100)}
	assert.NoError(t, binding.Validator.ValidateStruct(ok))

	missingSell := dto.CreateGoldRateRequest{BuyPrice: decimal.NewFromInt(6000)}
	assert.Error(t, binding.Validator.ValidateStruct(missingSell))
}

func TestResponseEnvelope(t *testing.T) {
	ok := dto.OK("done", map[string]int{"n": 1})
	assert.True(t, ok.Success)
	assert.Equal(t, "done", ok.Message)

	fail := dto.Fail("nope")
	assert.False(t, fail.Success)
	assert.Nil(t, fail.Data)
}

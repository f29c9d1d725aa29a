package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldRate is a published buy/sell price pair. At most one rate is active at a time;
// older rates are kept inactive as the audit trail.
type GoldRate struct {
	GoldRateID    string          `json:"goldRateID"`
	BuyPrice      decimal.Decimal `json:"buyPrice"`  // per gram, applied to BUY trades
	SellPrice     decimal.Decimal `json:"sellPrice"` // per gram, applied to SELL trades
	IsActive      bool            `json:"isActive"`
	EffectiveDate time.Time       `json:"effectiveDate"`
	AuditFields
}

// PriceFor returns the per-gram price a trade of the given type is executed at.
func (r *GoldRate) PriceFor(t TradeType) decimal.Decimal {
	if t == TradeSell {
		return r.SellPrice
	}
	return r.BuyPrice
}

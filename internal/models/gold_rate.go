package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoldRate is the row shape of the gold_rates table.
type GoldRate struct {
	GoldRateID    string          `db:"gold_rate_id"`
	BuyPrice      decimal.Decimal `db:"buy_price"`
	SellPrice     decimal.Decimal `db:"sell_price"`
	IsActive      bool            `db:"is_active"`
	EffectiveDate time.Time       `db:"effective_date"`
	AuditFields
}

package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Trade is the row shape of the trades table.
type Trade struct {
	TradeID         string          `db:"trade_id"`
	MemberID        string          `db:"member_id"`
	TradeType       string          `db:"trade_type"`
	Quantity        decimal.Decimal `db:"quantity"`
	RateAtTrade     decimal.Decimal `db:"rate_at_trade"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	GoldRateID      string          `db:"gold_rate_id"`
	InitiatedBy     string          `db:"initiated_by"`
	InitiatedByRole string          `db:"initiated_by_role"`
	ApprovedBy      sql.NullString  `db:"approved_by"`
	ApprovedAt      sql.NullTime    `db:"approved_at"`
	CancelledBy     sql.NullString  `db:"cancelled_by"`
	CancelledAt     sql.NullTime    `db:"cancelled_at"`
	CancelReason    sql.NullString  `db:"cancel_reason"`
	Notes           sql.NullString  `db:"notes"`
	AuditFields
}

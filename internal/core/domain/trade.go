package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
)

// TradeType is the direction of a trade from the member's point of view.
type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

// IsValid reports whether t is a known trade type.
func (t TradeType) IsValid() bool {
	return t == TradeBuy || t == TradeSell
}

// TradeStatus is a state in the trade lifecycle.
type TradeStatus string

const (
	TradePending   TradeStatus = "PENDING"
	TradeCompleted TradeStatus = "COMPLETED"
	TradeCancelled TradeStatus = "CANCELLED"
)

// IsValid reports whether s is a known trade status.
func (s TradeStatus) IsValid() bool {
	return s == TradePending || s == TradeCompleted || s == TradeCancelled
}

// Trade is a BUY or SELL order against a member's gold holdings, priced at the
// rate that was active when it was created.
type Trade struct {
	TradeID         string          `json:"tradeID"`
	MemberID        string          `json:"memberID"`
	TradeType       TradeType       `json:"tradeType"`
	Quantity        decimal.Decimal `json:"quantity"` // grams
	RateAtTrade     decimal.Decimal `json:"rateAtTrade"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          TradeStatus     `json:"status"`
	GoldRateID      string          `json:"goldRateID"`
	InitiatedBy     string          `json:"initiatedBy"`
	InitiatedByRole Role            `json:"initiatedByRole"`
	ApprovedBy      *string         `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	CancelledBy     *string         `json:"cancelledBy,omitempty"`
	CancelledAt     *time.Time      `json:"cancelledAt,omitempty"`
	CancelReason    *string         `json:"cancelReason,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	AuditFields
}

// TotalFor computes quantity × rate rounded to two decimal places.
func TotalFor(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate).Round(2)
}

// HoldingsDelta is the change to the member's holdings once the trade completes.
func (t *Trade) HoldingsDelta() decimal.Decimal {
	if t.TradeType == TradeSell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

// Approve moves a PENDING trade to COMPLETED and returns the holdings delta to apply.
func (t *Trade) Approve(adminID string, now time.Time) (decimal.Decimal, error) {
	if t.Status != TradePending {
		return decimal.Zero, fmt.Errorf("%w: cannot approve trade in status %s", apperrors.ErrInvalidTransition, t.Status)
	}
	t.Status = TradeCompleted
	t.ApprovedBy = &adminID
	t.ApprovedAt = &now
	t.LastUpdatedAt = now
	t.LastUpdatedBy = adminID
	return t.HoldingsDelta(), nil
}

// Reject moves a PENDING trade to CANCELLED. Holdings are untouched.
func (t *Trade) Reject(adminID string, reason *string, now time.Time) error {
	if t.Status != TradePending {
		return fmt.Errorf("%w: cannot reject trade in status %s", apperrors.ErrInvalidTransition, t.Status)
	}
	t.markCancelled(adminID, reason, now)
	return nil
}

// Cancel moves a PENDING or COMPLETED trade to CANCELLED and returns the holdings
// delta to apply. For a COMPLETED trade the delta reverses the one applied on approval.
func (t *Trade) Cancel(adminID string, reason *string, now time.Time) (decimal.Decimal, error) {
	switch t.Status {
	case TradePending:
		t.markCancelled(adminID, reason, now)
		return decimal.Zero, nil
	case TradeCompleted:
		t.markCancelled(adminID, reason, now)
		return t.HoldingsDelta().Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: trade is already %s", apperrors.ErrInvalidTransition, t.Status)
	}
}

func (t *Trade) markCancelled(adminID string, reason *string, now time.Time) {
	t.Status = TradeCancelled
	t.CancelledBy = &adminID
	t.CancelledAt = &now
	t.CancelReason = reason
	t.LastUpdatedAt = now
	t.LastUpdatedBy = adminID
}

// TradeFilter narrows trade listings. Zero values mean "no filter".
type TradeFilter struct {
	MemberID  string
	Status    TradeStatus
	TradeType TradeType
	Limit     int
	NextToken *string
}

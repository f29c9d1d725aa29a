package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
)

// MemberStatus is the account state of a member.
type MemberStatus string

const (
	MemberActive    MemberStatus = "ACTIVE"
	MemberSuspended MemberStatus = "SUSPENDED"
)

// IsValid reports whether s is a known member status.
func (s MemberStatus) IsValid() bool {
	return s == MemberActive || s == MemberSuspended
}

// Member is a customer whose gold holdings are tracked by the portal.
type Member struct {
	MemberID     string          `json:"memberID"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	PasswordHash string          `json:"-"`
	Status       MemberStatus    `json:"status"`
	GoldHoldings decimal.Decimal `json:"goldHoldings"` // grams
	AuditFields

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}

// IsActive reports whether the member may log in and trade.
func (m *Member) IsActive() bool {
	return m.Status == MemberActive
}

// HoldingsAfter returns the holdings that would result from applying delta.
// Holdings can never go negative.
func (m *Member) HoldingsAfter(delta decimal.Decimal) (decimal.Decimal, error) {
	next := m.GoldHoldings.Add(delta)
	if next.IsNegative() {
		return m.GoldHoldings, fmt.Errorf("%w: member %s holds %s, change of %s not possible",
			apperrors.ErrInsufficientHoldings, m.MemberID, m.GoldHoldings.String(), delta.String())
	}
	return next, nil
}

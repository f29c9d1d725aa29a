package domain

import "github.com/shopspring/decimal"

// TradeVolume sums quantity and amount for completed trades of one type.
type TradeVolume struct {
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// TradeStats aggregates trade counts by status and completed volumes by type.
type TradeStats struct {
	Pending   int64       `json:"pending"`
	Completed int64       `json:"completed"`
	Cancelled int64       `json:"cancelled"`
	Bought    TradeVolume `json:"bought"`
	Sold      TradeVolume `json:"sold"`
}

// Total returns the number of trades across all statuses.
func (s TradeStats) Total() int64 {
	return s.Pending + s.Completed + s.Cancelled
}

// MemberCounts summarises the member base.
type MemberCounts struct {
	Total        int64           `json:"total"`
	Active       int64           `json:"active"`
	GoldHoldings decimal.Decimal `json:"goldHoldings"`
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	Members       MemberCounts     `json:"members"`
	Trades        TradeStats       `json:"trades"`
	ActiveRate    *GoldRate        `json:"activeRate,omitempty"`
	HoldingsValue *decimal.Decimal `json:"holdingsValue,omitempty"`
}

// MemberStats is a member's own portfolio overview.
type MemberStats struct {
	MemberID      string           `json:"memberID"`
	GoldHoldings  decimal.Decimal  `json:"goldHoldings"`
	Trades        TradeStats       `json:"trades"`
	ActiveRate    *GoldRate        `json:"activeRate,omitempty"`
	HoldingsValue *decimal.Decimal `json:"holdingsValue,omitempty"`
}

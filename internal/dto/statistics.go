package dto

import (
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// TradeStatsResponse reports trade counts and completed volumes.
type TradeStatsResponse struct {
	Total     int64              `json:"total"`
	Pending   int64              `json:"pending"`
	Completed int64              `json:"completed"`
	Cancelled int64              `json:"cancelled"`
	Bought    domain.TradeVolume `json:"bought"`
	Sold      domain.TradeVolume `json:"sold"`
}

// DashboardStatsResponse is the admin overview.
type DashboardStatsResponse struct {
	TotalMembers      int64              `json:"totalMembers"`
	ActiveMembers     int64              `json:"activeMembers"`
	TotalGoldHoldings decimal.Decimal    `json:"totalGoldHoldings"`
	Trades            TradeStatsResponse `json:"trades"`
	ActiveRate        *GoldRateResponse  `json:"activeRate,omitempty"`
	HoldingsValue     *decimal.Decimal   `json:"holdingsValue,omitempty"`
}

// MemberStatsResponse is a member's own overview.
type MemberStatsResponse struct {
	MemberID      string             `json:"memberID"`
	GoldHoldings  decimal.Decimal    `json:"goldHoldings"`
	Trades        TradeStatsResponse `json:"trades"`
	ActiveRate    *GoldRateResponse  `json:"activeRate,omitempty"`
	HoldingsValue *decimal.Decimal   `json:"holdingsValue,omitempty"`
}

func toTradeStatsResponse(s domain.TradeStats) TradeStatsResponse {
	return TradeStatsResponse{
		Total:     s.Total(),
		Pending:   s.Pending,
		Completed: s.Completed,
		Cancelled: s.Cancelled,
		Bought:    s.Bought,
		Sold:      s.Sold,
	}
}

func optionalGoldRate(rate *domain.GoldRate) *GoldRateResponse {
	if rate == nil {
		return nil
	}
	resp := ToGoldRateResponse(rate)
	return &resp
}

// ToDashboardStatsResponse converts domain.DashboardStats to its DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalMembers:      s.Members.Total,
		ActiveMembers:     s.Members.Active,
		TotalGoldHoldings: s.Members.GoldHoldings,
		Trades:            toTradeStatsResponse(s.Trades),
		ActiveRate:        optionalGoldRate(s.ActiveRate),
		HoldingsValue:     s.HoldingsValue,
	}
}

// ToMemberStatsResponse converts domain.MemberStats to its DTO.
func ToMemberStatsResponse(s *domain.MemberStats) MemberStatsResponse {
	return MemberStatsResponse{
		MemberID:      s.MemberID,
		GoldHoldings:  s.GoldHoldings,
		Trades:        toTradeStatsResponse(s.Trades),
		ActiveRate:    optionalGoldRate(s.ActiveRate),
		HoldingsValue: s.HoldingsValue,
	}
}

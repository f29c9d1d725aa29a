package mapping

import (
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
)

// ToModelTrade converts a domain Trade to a model Trade
func ToModelTrade(d domain.Trade) models.Trade {
	return models.Trade{
		TradeID:         d.TradeID,
		MemberID:        d.MemberID,
		TradeType:       string(d.TradeType),
		Quantity:        d.Quantity,
		RateAtTrade:     d.RateAtTrade,
		TotalAmount:     d.TotalAmount,
		Status:          string(d.Status),
		GoldRateID:      d.GoldRateID,
		InitiatedBy:     d.InitiatedBy,
		InitiatedByRole: string(d.InitiatedByRole),
		ApprovedBy:      toNullString(d.ApprovedBy),
		ApprovedAt:      toNullTime(d.ApprovedAt),
		CancelledBy:     toNullString(d.CancelledBy),
		CancelledAt:     toNullTime(d.CancelledAt),
		CancelReason:    toNullString(d.CancelReason),
		Notes:           toNullString(d.Notes),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrade converts a model Trade to a domain Trade
func ToDomainTrade(m models.Trade) domain.Trade {
	return domain.Trade{
		TradeID:         m.TradeID,
		MemberID:        m.MemberID,
		TradeType:       domain.TradeType(m.TradeType),
		Quantity:        m.Quantity,
		RateAtTrade:     m.RateAtTrade,
		TotalAmount:     m.TotalAmount,
		Status:          domain.TradeStatus(m.Status),
		GoldRateID:      m.GoldRateID,
		InitiatedBy:     m.InitiatedBy,
		InitiatedByRole: domain.Role(m.InitiatedByRole),
		ApprovedBy:      fromNullString(m.ApprovedBy),
		ApprovedAt:      fromNullTime(m.ApprovedAt),
		CancelledBy:     fromNullString(m.CancelledBy),
		CancelledAt:     fromNullTime(m.CancelledAt),
		CancelReason:    fromNullString(m.CancelReason),
		Notes:           fromNullString(m.Notes),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

package mapping

import (
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
)

// ToModelGoldRate converts a domain GoldRate to a model GoldRate
func ToModelGoldRate(d domain.GoldRate) models.GoldRate {
	return models.GoldRate{
		GoldRateID:    d.GoldRateID,
		BuyPrice:      d.BuyPrice,
		SellPrice:     d.SellPrice,
		IsActive:      d.IsActive,
		EffectiveDate: d.EffectiveDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoldRate converts a model GoldRate to a domain GoldRate
func ToDomainGoldRate(m models.GoldRate) domain.GoldRate {
	return domain.GoldRate{
		GoldRateID:    m.GoldRateID,
		BuyPrice:      m.BuyPrice,
		SellPrice:     m.SellPrice,
		IsActive:      m.IsActive,
		EffectiveDate: m.EffectiveDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

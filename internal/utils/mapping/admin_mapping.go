package mapping

import (
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
)

// ToModelAdmin converts a domain Admin to a model Admin
func ToModelAdmin(d domain.Admin) models.Admin {
	return models.Admin{
		AdminID:                d.AdminID,
		Name:                   d.Name,
		Email:                  d.Email,
		PasswordHash:           d.PasswordHash,
		IsActive:               d.IsActive,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		RefreshTokenHash:       hashToNull(d.RefreshTokenHash),
		RefreshTokenExpiryTime: toNullTime(d.RefreshTokenExpiryTime),
	}
}

// ToDomainAdmin converts a model Admin to a domain Admin
func ToDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{
		AdminID:                m.AdminID,
		Name:                   m.Name,
		Email:                  m.Email,
		PasswordHash:           m.PasswordHash,
		IsActive:               m.IsActive,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		RefreshTokenHash:       m.RefreshTokenHash.String,
		RefreshTokenExpiryTime: fromNullTime(m.RefreshTokenExpiryTime),
	}
}

package mapping

import (
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:               d.MemberID,
		Name:                   d.Name,
		Email:                  d.Email,
		Phone:                  toNullString(d.Phone),
		PasswordHash:           d.PasswordHash,
		Status:                 string(d.Status),
		GoldHoldings:           d.GoldHoldings,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		RefreshTokenHash:       hashToNull(d.RefreshTokenHash),
		RefreshTokenExpiryTime: toNullTime(d.RefreshTokenExpiryTime),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:               m.MemberID,
		Name:                   m.Name,
		Email:                  m.Email,
		Phone:                  fromNullString(m.Phone),
		PasswordHash:           m.PasswordHash,
		Status:                 domain.MemberStatus(m.Status),
		GoldHoldings:           m.GoldHoldings,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		RefreshTokenHash:       m.RefreshTokenHash.String,
		RefreshTokenExpiryTime: fromNullTime(m.RefreshTokenExpiryTime),
	}
}

// ToDomainMemberSlice converts a slice of model Members to a slice of domain Members
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}

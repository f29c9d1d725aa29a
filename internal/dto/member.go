package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// CreateMemberRequest is used both for self-registration and for admin-created members.
type CreateMemberRequest struct {
	Name     string  `json:"name" binding:"required,min=2,max=100"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Phone    *string `json:"phone" binding:"omitempty,min=5,max=20"`
}

// UpdateMemberStatusRequest suspends or reactivates a member.
type UpdateMemberStatusRequest struct {
	Status domain.MemberStatus `json:"status" binding:"required,oneof=ACTIVE SUSPENDED"`
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	PageParams
	Status domain.MemberStatus `form:"status" binding:"omitempty,oneof=ACTIVE SUSPENDED"`
}

// MemberResponse is the public view of a member.
type MemberResponse struct {
	MemberID      string              `json:"memberID"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         *string             `json:"phone,omitempty"`
	Status        domain.MemberStatus `json:"status"`
	GoldHoldings  decimal.Decimal     `json:"goldHoldings"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ListMembersResponse is a page of members with the overall count.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// ToMemberResponse converts a domain.Member to MemberResponse DTO
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:      m.MemberID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Status:        m.Status,
		GoldHoldings:  m.GoldHoldings,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToListMembersResponse converts a slice of domain.Member to a ListMembersResponse.
func ToListMembersResponse(members []domain.Member, total, limit, offset int) ListMembersResponse {
	resp := ListMembersResponse{
		Members: make([]MemberResponse, len(members)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for i := range members {
		resp.Members[i] = ToMemberResponse(&members[i])
	}
	return resp
}

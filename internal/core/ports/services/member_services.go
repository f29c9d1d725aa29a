package services

import (
	"context"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

// MemberReaderSvc defines read operations for member data
type MemberReaderSvc interface {
	// GetMemberByID retrieves a member by ID.
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListMembers retrieves a page of members and the total count.
	ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, int, error)
}

// MemberWriterSvc defines write operations for member data
type MemberWriterSvc interface {
	// CreateMember creates a member on behalf of creatorID.
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorID string) (*domain.Member, error)

	// UpdateMemberStatus suspends or reactivates a member.
	UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updaterID string) (*domain.Member, error)
}

// MemberSvcFacade combines all member-related service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
}

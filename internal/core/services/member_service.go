package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

type memberService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
}

// NewMemberService creates the member management service.
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo}
}

// CreateMember creates an ACTIVE member with zero holdings. An empty creatorID
// means the member registered themselves.
func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, creatorID string) (*domain.Member, error) {
	hash, err := hashNewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	memberID := uuid.NewString()
	if creatorID == "" {
		creatorID = memberID
	}

	var phone *string
	if req.Phone != nil {
		if p := strings.TrimSpace(*req.Phone); p != "" {
			phone = &p
		}
	}

	now := s.Now()
	member := domain.Member{
		MemberID:     memberID,
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Phone:        phone,
		PasswordHash: hash,
		Status:       domain.MemberActive,
		GoldHoldings: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "Email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save member")
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.LogInfo(ctx, "Member created", slog.String("member_id", member.MemberID), slog.String("created_by", creatorID))
	return &member, nil
}

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Member not found")
		}
		s.LogError(ctx, err, "Failed to get member", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, params dto.ListMembersParams) ([]domain.Member, int, error) {
	if params.Status != "" && !params.Status.IsValid() {
		return nil, 0, apperrors.NewValidationError("status must be ACTIVE or SUSPENDED")
	}
	members, total, err := s.memberRepo.ListMembers(ctx, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	return members, total, nil
}

// UpdateMemberStatus changes the member's status. Suspending a member also
// revokes their refresh token so the session cannot be extended.
func (s *memberService) UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updaterID string) (*domain.Member, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status must be ACTIVE or SUSPENDED")
	}

	if err := s.memberRepo.UpdateMemberStatus(ctx, memberID, status, updaterID, s.Now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Member not found")
		}
		s.LogError(ctx, err, "Failed to update member status", slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to update member status: %w", err)
	}

	if status == domain.MemberSuspended {
		if err := s.memberRepo.ClearMemberRefreshToken(ctx, memberID); err != nil {
			s.LogError(ctx, err, "Failed to revoke suspended member's refresh token", slog.String("member_id", memberID))
			return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}

	s.LogInfo(ctx, "Member status updated",
		slog.String("member_id", memberID),
		slog.String("status", string(status)),
		slog.String("updated_by", updaterID))
	return s.GetMemberByID(ctx, memberID)
}

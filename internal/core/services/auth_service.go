package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/utils"
)

func invalidCredentials() error {
	return apperrors.NewAppError(http.StatusUnauthorized, "Invalid email or password", apperrors.ErrUnauthorized)
}

func invalidRefreshToken() error {
	return apperrors.NewAppError(http.StatusUnauthorized, "Invalid refresh token", apperrors.ErrUnauthorized)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashNewPassword maps password policy failures to validation errors.
func hashNewPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooShort) || errors.Is(err, utils.ErrPasswordTooLong) {
			return "", apperrors.NewValidationError(err.Error())
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// storeRefreshFn persists the hash of a newly issued refresh token.
type storeRefreshFn func(ctx context.Context, hash string, expiry time.Time) error

// issueTokenPair signs a new access/refresh pair and stores the refresh hash,
// which retires any previously issued refresh token for the account.
func issueTokenPair(ctx context.Context, tokens portssvc.TokenSvcFacade, subject string, role domain.Role, store storeRefreshFn) (*domain.TokenPair, error) {
	accessToken, accessExpiry, err := tokens.GenerateAccessToken(ctx, subject, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExpiry, err := tokens.GenerateRefreshToken(ctx, subject, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	if err := store(ctx, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return &domain.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
	}, nil
}

// checkStoredRefreshToken compares a presented token with the account's stored hash.
func checkStoredRefreshToken(presented, storedHash string, storedExpiry *time.Time, now time.Time) error {
	if storedHash == "" || storedExpiry == nil {
		return invalidRefreshToken()
	}
	if now.After(*storedExpiry) {
		return apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(presented, storedHash) {
		return invalidRefreshToken()
	}
	return nil
}

// parseRefreshSubject maps token parsing failures to client-facing errors.
func parseRefreshSubject(ctx context.Context, tokens portssvc.TokenSvcFacade, refreshToken string, role domain.Role) (string, error) {
	if refreshToken == "" {
		return "", apperrors.NewAppError(http.StatusUnauthorized, "Refresh token required", apperrors.ErrUnauthorized)
	}
	subject, err := tokens.ParseRefreshToken(ctx, refreshToken, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			return "", err
		}
		return "", invalidRefreshToken()
	}
	return subject, nil
}

// --- Admin authentication ---

type adminAuthService struct {
	BaseService
	adminRepo portsrepo.AdminRepositoryFacade
	tokens    portssvc.TokenSvcFacade
}

// NewAdminAuthService creates the admin portal authentication service.
func NewAdminAuthService(adminRepo portsrepo.AdminRepositoryFacade, tokens portssvc.TokenSvcFacade) portssvc.AdminAuthSvc {
	return &adminAuthService{adminRepo: adminRepo, tokens: tokens}
}

func (s *adminAuthService) issue(ctx context.Context, adminID string) (*domain.TokenPair, error) {
	return issueTokenPair(ctx, s.tokens, adminID, domain.RoleAdmin, func(ctx context.Context, hash string, expiry time.Time) error {
		return s.adminRepo.UpdateAdminRefreshToken(ctx, adminID, hash, expiry)
	})
}

// rotate issues a new pair only if presented is still the stored refresh token.
func (s *adminAuthService) rotate(ctx context.Context, adminID string, presented string) (*domain.TokenPair, error) {
	currentHash := utils.HashRefreshToken(presented)
	return issueTokenPair(ctx, s.tokens, adminID, domain.RoleAdmin, func(ctx context.Context, hash string, expiry time.Time) error {
		return s.adminRepo.RotateAdminRefreshToken(ctx, adminID, currentHash, hash, expiry)
	})
}

func (s *adminAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Admin, *domain.TokenPair, error) {
	admin, err := s.adminRepo.FindAdminByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Admin login for unknown email")
			return nil, nil, invalidCredentials()
		}
		s.LogError(ctx, err, "Failed to look up admin for login")
		return nil, nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.LogWarn(ctx, "Admin login with wrong password", slog.String("admin_id", admin.AdminID))
		return nil, nil, invalidCredentials()
	}
	if !admin.IsActive {
		return nil, nil, apperrors.NewForbiddenError("Admin account is inactive")
	}

	pair, err := s.issue(ctx, admin.AdminID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue admin tokens", slog.String("admin_id", admin.AdminID))
		return nil, nil, err
	}
	s.LogInfo(ctx, "Admin logged in", slog.String("admin_id", admin.AdminID))
	return admin, pair, nil
}

func (s *adminAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.Admin, *domain.TokenPair, error) {
	adminID, err := parseRefreshSubject(ctx, s.tokens, refreshToken, domain.RoleAdmin)
	if err != nil {
		return nil, nil, err
	}
	admin, err := s.adminRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, invalidRefreshToken()
		}
		return nil, nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if err := checkStoredRefreshToken(refreshToken, admin.RefreshTokenHash, admin.RefreshTokenExpiryTime, s.Now()); err != nil {
		s.LogWarn(ctx, "Admin refresh token rejected", slog.String("admin_id", adminID))
		return nil, nil, err
	}
	if !admin.IsActive {
		return nil, nil, apperrors.NewForbiddenError("Admin account is inactive")
	}

	pair, err := s.rotate(ctx, admin.AdminID, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Admin refresh token already rotated", slog.String("admin_id", admin.AdminID))
			return nil, nil, invalidRefreshToken()
		}
		s.LogError(ctx, err, "Failed to rotate admin tokens", slog.String("admin_id", admin.AdminID))
		return nil, nil, err
	}
	return admin, pair, nil
}

func (s *adminAuthService) Logout(ctx context.Context, adminID string) error {
	if err := s.adminRepo.ClearAdminRefreshToken(ctx, adminID); err != nil {
		s.LogError(ctx, err, "Failed to clear admin refresh token", slog.String("admin_id", adminID))
		return err
	}
	return nil
}

func (s *adminAuthService) GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Admin not found")
		}
		return nil, fmt.Errorf("failed to get admin %s: %w", adminID, err)
	}
	return admin, nil
}

func (s *adminAuthService) RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest, creatorID string) (*domain.Admin, error) {
	hash, err := hashNewPassword(req.Password)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	admin := domain.Admin{
		AdminID:      uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.adminRepo.SaveAdmin(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "Email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save admin")
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	s.LogInfo(ctx, "Admin registered", slog.String("admin_id", admin.AdminID), slog.String("created_by", creatorID))
	return &admin, nil
}

// --- Member authentication ---

type memberAuthService struct {
	BaseService
	memberRepo portsrepo.MemberRepositoryFacade
	members    portssvc.MemberWriterSvc
	tokens     portssvc.TokenSvcFacade
}

// NewMemberAuthService creates the member portal authentication service.
// Registration is delegated to members so both creation paths share one rule set.
func NewMemberAuthService(memberRepo portsrepo.MemberRepositoryFacade, members portssvc.MemberWriterSvc, tokens portssvc.TokenSvcFacade) portssvc.MemberAuthSvc {
	return &memberAuthService{memberRepo: memberRepo, members: members, tokens: tokens}
}

func (s *memberAuthService) issue(ctx context.Context, memberID string) (*domain.TokenPair, error) {
	return issueTokenPair(ctx, s.tokens, memberID, domain.RoleMember, func(ctx context.Context, hash string, expiry time.Time) error {
		return s.memberRepo.UpdateMemberRefreshToken(ctx, memberID, hash, expiry)
	})
}

// rotate issues a new pair only if presented is still the stored refresh token.
func (s *memberAuthService) rotate(ctx context.Context, memberID string, presented string) (*domain.TokenPair, error) {
	currentHash := utils.HashRefreshToken(presented)
	return issueTokenPair(ctx, s.tokens, memberID, domain.RoleMember, func(ctx context.Context, hash string, expiry time.Time) error {
		return s.memberRepo.RotateMemberRefreshToken(ctx, memberID, currentHash, hash, expiry)
	})
}

func (s *memberAuthService) Login(ctx context.Context, req dto.LoginRequest) (*domain.Member, *domain.TokenPair, error) {
	member, err := s.memberRepo.FindMemberByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Member login for unknown email")
			return nil, nil, invalidCredentials()
		}
		s.LogError(ctx, err, "Failed to look up member for login")
		return nil, nil, fmt.Errorf("failed to look up member: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, member.PasswordHash) {
		s.LogWarn(ctx, "Member login with wrong password", slog.String("member_id", member.MemberID))
		return nil, nil, invalidCredentials()
	}
	if !member.IsActive() {
		return nil, nil, apperrors.NewForbiddenError("Member account is suspended")
	}

	pair, err := s.issue(ctx, member.MemberID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue member tokens", slog.String("member_id", member.MemberID))
		return nil, nil, err
	}
	s.LogInfo(ctx, "Member logged in", slog.String("member_id", member.MemberID))
	return member, pair, nil
}

func (s *memberAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.Member, *domain.TokenPair, error) {
	memberID, err := parseRefreshSubject(ctx, s.tokens, refreshToken, domain.RoleMember)
	if err != nil {
		return nil, nil, err
	}
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, invalidRefreshToken()
		}
		return nil, nil, fmt.Errorf("failed to look up member: %w", err)
	}
	if err := checkStoredRefreshToken(refreshToken, member.RefreshTokenHash, member.RefreshTokenExpiryTime, s.Now()); err != nil {
		s.LogWarn(ctx, "Member refresh token rejected", slog.String("member_id", memberID))
		return nil, nil, err
	}
	if !member.IsActive() {
		return nil, nil, apperrors.NewForbiddenError("Member account is suspended")
	}

	pair, err := s.rotate(ctx, member.MemberID, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Member refresh token already rotated", slog.String("member_id", member.MemberID))
			return nil, nil, invalidRefreshToken()
		}
		s.LogError(ctx, err, "Failed to rotate member tokens", slog.String("member_id", member.MemberID))
		return nil, nil, err
	}
	return member, pair, nil
}

func (s *memberAuthService) Logout(ctx context.Context, memberID string) error {
	if err := s.memberRepo.ClearMemberRefreshToken(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Failed to clear member refresh token", slog.String("member_id", memberID))
		return err
	}
	return nil
}

func (s *memberAuthService) Register(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	return s.members.CreateMember(ctx, req, "")
}

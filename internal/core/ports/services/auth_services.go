package services

import (
	"context"
	"time"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs an access token for the account.
	GenerateAccessToken(ctx context.Context, subject string, role domain.Role) (string, time.Time, error)

	// GenerateRefreshToken signs a refresh token for the account.
	GenerateRefreshToken(ctx context.Context, subject string, role domain.Role) (string, time.Time, error)

	// ParseRefreshToken verifies a refresh token's signature, expiry and role and returns the subject.
	ParseRefreshToken(ctx context.Context, refreshToken string, role domain.Role) (string, error)
}

// AdminAuthSvc defines admin portal authentication.
type AdminAuthSvc interface {
	// Login checks credentials and issues a token pair.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Admin, *domain.TokenPair, error)

	// Refresh rotates the admin's refresh token.
	Refresh(ctx context.Context, refreshToken string) (*domain.Admin, *domain.TokenPair, error)

	// Logout revokes the admin's refresh token.
	Logout(ctx context.Context, adminID string) error

	// GetAdminByID returns the admin profile.
	GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)

	// RegisterAdmin creates another admin account.
	RegisterAdmin(ctx context.Context, req dto.RegisterAdminRequest, creatorID string) (*domain.Admin, error)
}

// MemberAuthSvc defines member portal authentication.
type MemberAuthSvc interface {
	// Login checks credentials and issues a token pair.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.Member, *domain.TokenPair, error)

	// Refresh rotates the member's refresh token.
	Refresh(ctx context.Context, refreshToken string) (*domain.Member, *domain.TokenPair, error)

	// Logout revokes the member's refresh token.
	Logout(ctx context.Context, memberID string) error

	// Register self-registers an ACTIVE member with zero holdings.
	Register(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error)
}

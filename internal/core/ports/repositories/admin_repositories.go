package repositories

import (
	"context"
	"time"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// AdminReader defines read operations for admin data
type AdminReader interface {
	// FindAdminByID retrieves an admin by ID.
	FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)

	// FindAdminByEmail retrieves an admin by login email (case-insensitive).
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

// AdminWriter defines write operations for admin data
type AdminWriter interface {
	// SaveAdmin persists a new admin. Returns apperrors.ErrDuplicate if the email is taken.
	SaveAdmin(ctx context.Context, admin domain.Admin) error

	// UpdateAdminRefreshToken stores the hash and expiry of the admin's current refresh token.
	UpdateAdminRefreshToken(ctx context.Context, adminID string, refreshTokenHash string, expiry time.Time) error

	// RotateAdminRefreshToken replaces the stored hash only while it still equals currentHash.
	// Returns apperrors.ErrNotFound when it no longer does.
	RotateAdminRefreshToken(ctx context.Context, adminID string, currentHash string, newHash string, expiry time.Time) error

	// ClearAdminRefreshToken removes the admin's stored refresh token.
	ClearAdminRefreshToken(ctx context.Context, adminID string) error
}

// AdminRepositoryFacade combines all admin-related repository interfaces
type AdminRepositoryFacade interface {
	AdminReader
	AdminWriter
}

package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// MemberReader defines read operations for member data
type MemberReader interface {
	// FindMemberByID retrieves a member by ID.
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)

	// FindMemberByEmail retrieves a member by login email (case-insensitive).
	FindMemberByEmail(ctx context.Context, email string) (*domain.Member, error)

	// ListMembers retrieves a page of members, optionally filtered by status, with the total count.
	ListMembers(ctx context.Context, status domain.MemberStatus, limit int, offset int) ([]domain.Member, int, error)
}

// MemberWriter defines write operations for member data
type MemberWriter interface {
	// SaveMember persists a new member. Returns apperrors.ErrDuplicate if the email is taken.
	SaveMember(ctx context.Context, member domain.Member) error

	// UpdateMemberStatus sets the member's account status.
	UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedBy string, now time.Time) error

	// UpdateMemberRefreshToken stores the hash and expiry of the member's current refresh token.
	UpdateMemberRefreshToken(ctx context.Context, memberID string, refreshTokenHash string, expiry time.Time) error

	// RotateMemberRefreshToken replaces the stored hash only while it still equals currentHash.
	// Returns apperrors.ErrNotFound when it no longer does.
	RotateMemberRefreshToken(ctx context.Context, memberID string, currentHash string, newHash string, expiry time.Time) error

	// ClearMemberRefreshToken removes the member's stored refresh token.
	ClearMemberRefreshToken(ctx context.Context, memberID string) error
}

// MemberTransactionSupport defines operations that run inside a trade transition transaction
type MemberTransactionSupport interface {
	// FindMemberByIDForUpdate selects a member and locks the row until tx ends.
	FindMemberByIDForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error)

	// UpdateGoldHoldingsInTx sets the member's holdings within tx.
	UpdateGoldHoldingsInTx(ctx context.Context, tx pgx.Tx, memberID string, holdings decimal.Decimal, updatedBy string, now time.Time) error
}

// MemberRepositoryFacade combines all member-related repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
	MemberTransactionSupport
}

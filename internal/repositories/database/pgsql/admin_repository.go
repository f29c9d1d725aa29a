package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/utils/mapping"
)

const adminColumns = `admin_id, name, email, password_hash, is_active,
	refresh_token_hash, refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepositoryFacade {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAdminRepository implements portsrepo.AdminRepositoryFacade
var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

func scanAdmin(row rowScanner) (*domain.Admin, error) {
	var m models.Admin
	if err := row.Scan(
		&m.AdminID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.IsActive,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	admin := mapping.ToDomainAdmin(m)
	return &admin, nil
}

func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	m := mapping.ToModelAdmin(admin)
	query := `
		INSERT INTO admins (admin_id, name, email, password_hash, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AdminID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: admin with email %s", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save admin: %w", err)
	}
	return nil
}

func (r *PgxAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE admin_id = $1;`
	admin, err := scanAdmin(r.Pool.QueryRow(ctx, query, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin by ID %s: %w", adminID, err)
	}
	return admin, nil
}

func (r *PgxAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE lower(email) = lower($1);`
	admin, err := scanAdmin(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}
	return admin, nil
}

func (r *PgxAdminRepository) UpdateAdminRefreshToken(ctx context.Context, adminID string, refreshTokenHash string, expiry time.Time) error {
	query := `
		UPDATE admins
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE admin_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, refreshTokenHash, expiry, adminID)
	if err != nil {
		return fmt.Errorf("failed to update admin refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAdminRepository) RotateAdminRefreshToken(ctx context.Context, adminID string, currentHash string, newHash string, expiry time.Time) error {
	query := `
		UPDATE admins
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE admin_id = $3 AND refresh_token_hash = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, newHash, expiry, adminID, currentHash)
	if err != nil {
		return fmt.Errorf("failed to rotate admin refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAdminRepository) ClearAdminRefreshToken(ctx context.Context, adminID string) error {
	query := `
		UPDATE admins
		SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL
		WHERE admin_id = $1;
	`
	if _, err := r.Pool.Exec(ctx, query, adminID); err != nil {
		return fmt.Errorf("failed to clear admin refresh token: %w", err)
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/models"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/utils/mapping"
)

const memberColumns = `member_id, name, email, phone, password_hash, status, gold_holdings,
	refresh_token_hash, refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func scanMember(row rowScanner) (*domain.Member, error) {
	var m models.Member
	if err := row.Scan(
		&m.MemberID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.PasswordHash,
		&m.Status,
		&m.GoldHoldings,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

func (r *PgxMemberRepository) findOne(ctx context.Context, q querier, query string, arg any) (*domain.Member, error) {
	member, err := scanMember(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	return member, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (member_id, name, email, phone, password_hash, status, gold_holdings,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID,
		m.Name,
		m.Email,
		m.Phone,
		m.PasswordHash,
		m.Status,
		m.GoldHoldings,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: member with email %s", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+memberColumns+` FROM members WHERE member_id = $1;`, memberID)
}

func (r *PgxMemberRepository) FindMemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return r.findOne(ctx, r.Pool, `SELECT `+memberColumns+` FROM members WHERE lower(email) = lower($1);`, email)
}

// FindMemberByIDForUpdate locks the member row until tx ends so concurrent
// transitions on the same member serialize.
func (r *PgxMemberRepository) FindMemberByIDForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error) {
	return r.findOne(ctx, tx, `SELECT `+memberColumns+` FROM members WHERE member_id = $1 FOR UPDATE;`, memberID)
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, status domain.MemberStatus, limit int, offset int) ([]domain.Member, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := ""
	args := []any{}
	if status != "" {
		where = "WHERE status = $1"
		args = append(args, string(status))
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM members `+where+`;`, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM members %s ORDER BY created_at DESC, member_id DESC LIMIT $%d OFFSET $%d;`,
		memberColumns, where, len(args)+1, len(args)+2)
	rows, err := r.Pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating member rows: %w", err)
	}
	return members, total, nil
}

func (r *PgxMemberRepository) UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE members
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE member_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, string(status), now, updatedBy, memberID)
	if err != nil {
		return fmt.Errorf("failed to update member status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) UpdateGoldHoldingsInTx(ctx context.Context, tx pgx.Tx, memberID string, holdings decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		UPDATE members
		SET gold_holdings = $1, last_updated_at = $2, last_updated_by = $3
		WHERE member_id = $4;
	`
	tag, err := tx.Exec(ctx, query, holdings, now, updatedBy, memberID)
	if err != nil {
		return fmt.Errorf("failed to update gold holdings for member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMemberRefreshToken(ctx context.Context, memberID string, refreshTokenHash string, expiry time.Time) error {
	query := `
		UPDATE members
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE member_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, refreshTokenHash, expiry, memberID)
	if err != nil {
		return fmt.Errorf("failed to update member refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) RotateMemberRefreshToken(ctx context.Context, memberID string, currentHash string, newHash string, expiry time.Time) error {
	query := `
		UPDATE members
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2
		WHERE member_id = $3 AND refresh_token_hash = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, newHash, expiry, memberID, currentHash)
	if err != nil {
		return fmt.Errorf("failed to rotate member refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) ClearMemberRefreshToken(ctx context.Context, memberID string) error {
	query := `
		UPDATE members
		SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL
		WHERE member_id = $1;
	`
	if _, err := r.Pool.Exec(ctx, query, memberID); err != nil {
		return fmt.Errorf("failed to clear member refresh token: %w", err)
	}
	return nil
}

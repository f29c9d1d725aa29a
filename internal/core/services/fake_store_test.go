package services_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
)

// memStore is an in-memory stand-in for every repository. Reads return copies
// so services only change stored state through the write methods.
type memStore struct {
	mu      sync.Mutex
	admins  map[string]domain.Admin
	members map[string]domain.Member
	rates   map[string]domain.GoldRate
	trades  map[string]domain.Trade
	commits int
}

var (
	_ portsrepo.AdminRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.MemberRepositoryFacade   = (*memStore)(nil)
	_ portsrepo.GoldRateRepositoryFacade = (*memStore)(nil)
	_ portsrepo.TradeRepositoryWithTx    = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		admins:  map[string]domain.Admin{},
		members: map[string]domain.Member{},
		rates:   map[string]domain.GoldRate{},
		trades:  map[string]domain.Trade{},
	}
}

func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }

func (s *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commits++
	return nil
}

func (s *memStore) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }

// --- admins ---

func (s *memStore) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if strings.EqualFold(a.Email, admin.Email) {
			return apperrors.ErrDuplicate
		}
	}
	s.admins[admin.AdminID] = admin
	return nil
}

func (s *memStore) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[adminID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (s *memStore) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) UpdateAdminRefreshToken(ctx context.Context, adminID string, hash string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[adminID]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.RefreshTokenHash = hash
	a.RefreshTokenExpiryTime = &expiry
	s.admins[adminID] = a
	return nil
}

func (s *memStore) RotateAdminRefreshToken(ctx context.Context, adminID string, currentHash string, newHash string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[adminID]
	if !ok || a.RefreshTokenHash != currentHash {
		return apperrors.ErrNotFound
	}
	a.RefreshTokenHash = newHash
	a.RefreshTokenExpiryTime = &expiry
	s.admins[adminID] = a
	return nil
}

func (s *memStore) ClearAdminRefreshToken(ctx context.Context, adminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.admins[adminID]
	a.RefreshTokenHash = ""
	a.RefreshTokenExpiryTime = nil
	s.admins[adminID] = a
	return nil
}

// --- members ---

func (s *memStore) SaveMember(ctx context.Context, member domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if strings.EqualFold(m.Email, member.Email) {
			return apperrors.ErrDuplicate
		}
	}
	s.members[member.MemberID] = member
	return nil
}

func (s *memStore) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[memberID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &m, nil
}

func (s *memStore) FindMemberByEmail(ctx context.Context, email string) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.members {
		if strings.EqualFold(m.Email, email) {
			return &m, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) ListMembers(ctx context.Context, status domain.MemberStatus, limit int, offset int) ([]domain.Member, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Member{}
	for _, m := range s.members {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := len(out)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return out[offset:end], total, nil
}

func (s *memStore) UpdateMemberStatus(ctx context.Context, memberID string, status domain.MemberStatus, updatedBy string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[memberID]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.Status = status
	m.LastUpdatedBy = updatedBy
	m.LastUpdatedAt = now
	s.members[memberID] = m
	return nil
}

func (s *memStore) UpdateMemberRefreshToken(ctx context.Context, memberID string, hash string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[memberID]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.RefreshTokenHash = hash
	m.RefreshTokenExpiryTime = &expiry
	s.members[memberID] = m
	return nil
}

func (s *memStore) RotateMemberRefreshToken(ctx context.Context, memberID string, currentHash string, newHash string, expiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[memberID]
	if !ok || m.RefreshTokenHash != currentHash {
		return apperrors.ErrNotFound
	}
	m.RefreshTokenHash = newHash
	m.RefreshTokenExpiryTime = &expiry
	s.members[memberID] = m
	return nil
}

func (s *memStore) ClearMemberRefreshToken(ctx context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.members[memberID]
	m.RefreshTokenHash = ""
	m.RefreshTokenExpiryTime = nil
	s.members[memberID] = m
	return nil
}

func (s *memStore) FindMemberByIDForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error) {
	return s.FindMemberByID(ctx, memberID)
}

func (s *memStore) UpdateGoldHoldingsInTx(ctx context.Context, tx pgx.Tx, memberID string, holdings decimal.Decimal, updatedBy string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[memberID]
	if !ok {
		return apperrors.ErrNotFound
	}
	m.GoldHoldings = holdings
	m.LastUpdatedBy = updatedBy
	m.LastUpdatedAt = now
	s.members[memberID] = m
	return nil
}

// --- gold rates ---

func (s *memStore) ActivateGoldRate(ctx context.Context, rate domain.GoldRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.rates {
		if r.IsActive {
			r.IsActive = false
			s.rates[id] = r
		}
	}
	rate.IsActive = true
	s.rates[rate.GoldRateID] = rate
	return nil
}

func (s *memStore) FindActiveGoldRate(ctx context.Context) (*domain.GoldRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rates {
		if r.IsActive {
			return &r, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memStore) FindGoldRateByID(ctx context.Context, goldRateID string) (*domain.GoldRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rates[goldRateID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) ListGoldRates(ctx context.Context, limit int, offset int) ([]domain.GoldRate, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GoldRate, 0, len(s.rates))
	for _, r := range s.rates {
		out = append(out, r)
	}
	return out, len(out), nil
}

func (s *memStore) activeRateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.rates {
		if r.IsActive {
			n++
		}
	}
	return n
}

// --- trades ---

func (s *memStore) SaveTrade(ctx context.Context, trade domain.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades[trade.TradeID] = trade
	return nil
}

func (s *memStore) FindTradeByID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trades[tradeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (s *memStore) ListTrades(ctx context.Context, filter domain.TradeFilter) ([]domain.Trade, *string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Trade{}
	for _, t := range s.trades {
		if filter.MemberID != "" && t.MemberID != filter.MemberID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.TradeType != "" && t.TradeType != filter.TradeType {
			continue
		}
		out = append(out, t)
	}
	return out, nil, nil
}

func (s *memStore) FindTradeByIDForUpdate(ctx context.Context, tx pgx.Tx, tradeID string) (*domain.Trade, error) {
	return s.FindTradeByID(ctx, tradeID)
}

func (s *memStore) UpdateTradeStatusInTx(ctx context.Context, tx pgx.Tx, trade domain.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trades[trade.TradeID]; !ok {
		return apperrors.ErrNotFound
	}
	s.trades[trade.TradeID] = trade
	return nil
}

// --- helpers ---

func (s *memStore) addMember(id string, holdings string, status domain.MemberStatus) domain.Member {
	m := domain.Member{
		MemberID:     id,
		Name:         "Member " + id,
		Email:        id + "@example.com",
		Status:       status,
		GoldHoldings: decimal.RequireFromString(holdings),
	}
	s.mu.Lock()
	s.members[id] = m
	s.mu.Unlock()
	return m
}

func (s *memStore) holdings(memberID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[memberID].GoldHoldings
}

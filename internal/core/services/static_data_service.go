package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
)

// SystemActor is recorded as the creator of data seeded at startup.
const SystemActor = "system"

// SeedAdmin describes the admin created on first start.
type SeedAdmin struct {
	Name     string
	Email    string
	Password string
}

type staticDataService struct {
	BaseService
	adminRepo portsrepo.AdminRepositoryFacade
	admins    portssvc.AdminAuthSvc
	seed      SeedAdmin
}

// NewStaticDataService creates the startup seeding service.
func NewStaticDataService(adminRepo portsrepo.AdminRepositoryFacade, admins portssvc.AdminAuthSvc, seed SeedAdmin) portssvc.StaticDataService {
	return &staticDataService{adminRepo: adminRepo, admins: admins, seed: seed}
}

// InitializeStaticData creates the seed admin unless it is unconfigured or already exists.
func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	if s.seed.Email == "" || s.seed.Password == "" {
		s.LogDebug(ctx, "No seed admin configured")
		return nil
	}

	_, err := s.adminRepo.FindAdminByEmail(ctx, normalizeEmail(s.seed.Email))
	if err == nil {
		s.LogDebug(ctx, "Seed admin already present")
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for seed admin: %w", err)
	}

	admin, err := s.admins.RegisterAdmin(ctx, dto.RegisterAdminRequest{
		Name:     s.seed.Name,
		Email:    s.seed.Email,
		Password: s.seed.Password,
	}, SystemActor)
	if err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}
	s.LogInfo(ctx, "Seed admin created", slog.String("admin_id", admin.AdminID))
	return nil
}

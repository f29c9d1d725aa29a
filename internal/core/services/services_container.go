package services

import (
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.Member = NewMemberService(repos.MemberRepo)
	container.AdminAuth = NewAdminAuthService(repos.AdminRepo, container.Token)
	container.MemberAuth = NewMemberAuthService(repos.MemberRepo, container.Member, container.Token)
	container.GoldRate = NewGoldRateService(repos.GoldRateRepo)
	container.Trade = NewTradeService(repos.TradeRepo, repos.MemberRepo, repos.GoldRateRepo)
	container.Statistics = NewStatisticsService(repos.StatisticsRepo, repos.MemberRepo, repos.GoldRateRepo)
	container.StaticData = NewStaticDataService(repos.AdminRepo, container.AdminAuth, SeedAdmin{
		Name:     cfg.AdminSeedName,
		Email:    cfg.AdminSeedEmail,
		Password: cfg.AdminSeedPassword,
	})

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade    = (*tokenService)(nil)
	_ portssvc.AdminAuthSvc      = (*adminAuthService)(nil)
	_ portssvc.MemberAuthSvc     = (*memberAuthService)(nil)
	_ portssvc.MemberSvcFacade   = (*memberService)(nil)
	_ portssvc.GoldRateSvcFacade = (*goldRateService)(nil)
	_ portssvc.TradeSvcFacade    = (*tradeService)(nil)
	_ portssvc.StatisticsSvc     = (*statisticsService)(nil)
)

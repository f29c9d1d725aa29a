package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AdminRepo:      newPgxAdminRepository(dbPool),
		MemberRepo:     newPgxMemberRepository(dbPool),
		GoldRateRepo:   newPgxGoldRateRepository(dbPool),
		TradeRepo:      newPgxTradeRepository(dbPool),
		StatisticsRepo: newPgxStatisticsRepository(dbPool),
	}
}

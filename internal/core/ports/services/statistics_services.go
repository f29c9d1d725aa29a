package services

import (
	"context"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// StatisticsSvc provides the dashboard aggregates.
type StatisticsSvc interface {
	// GetDashboardStats returns the admin overview.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// GetMemberStats returns a member's own overview.
	GetMemberStats(ctx context.Context, memberID string) (*domain.MemberStats, error)
}

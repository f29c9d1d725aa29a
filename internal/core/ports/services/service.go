package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Token      TokenSvcFacade
	AdminAuth  AdminAuthSvc
	MemberAuth MemberAuthSvc
	Member     MemberSvcFacade
	GoldRate   GoldRateSvcFacade
	Trade      TradeSvcFacade
	Statistics StatisticsSvc
	StaticData StaticDataService
}

// StaticDataService prepares data the application needs before serving requests.
type StaticDataService interface {
	// InitializeStaticData creates the seed admin when one is configured and missing.
	InitializeStaticData(ctx context.Context) error
}

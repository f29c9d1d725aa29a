package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/cmd/docs"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/middleware"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter guards the public credential endpoints.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) error {
	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.OK("OK", nil))
	})

	authenticated := middleware.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	memberOnly := middleware.RequireRole(domain.RoleMember)
	rateLimited := middleware.RateLimit(loginLimiter)

	auth := r.Group("/auth")
	registerAdminAuthRoutes(auth.Group("/admin"), cfg, services, authenticated, adminOnly, rateLimited)
	registerMemberAuthRoutes(auth.Group("/member"), cfg, services, authenticated, memberOnly, rateLimited)

	registerGoldRateRoutes(r.Group("/gold-rates", authenticated), services.GoldRate, adminOnly)
	registerTradeRoutes(r.Group("/trades", authenticated), services.Trade, adminOnly)
	registerStatisticsRoutes(r.Group("/statistics", authenticated), services.Statistics, adminOnly, memberOnly)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.Fail("Route not found"))
	})

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/middleware"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/platform/config"
)

// adminAuthHandler handles admin portal authentication.
type adminAuthHandler struct {
	authService portssvc.AdminAuthSvc
	cookie      refreshCookie
}

func newAdminAuthHandler(as portssvc.AdminAuthSvc, cfg *config.Config) *adminAuthHandler {
	return &adminAuthHandler{
		authService: as,
		cookie:      newRefreshCookie(cfg, domain.RoleAdmin),
	}
}

// registerAdminAuthRoutes registers /auth/admin, including member management.
func registerAdminAuthRoutes(
	rg *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authenticated, adminOnly, rateLimited gin.HandlerFunc,
) {
	h := newAdminAuthHandler(services.AdminAuth, cfg)

	rg.POST("/login", rateLimited, h.login)
	rg.POST("/refresh", h.refresh)

	protected := rg.Group("", authenticated, adminOnly)
	{
		protected.POST("/logout", h.logout)
		protected.GET("/me", h.me)
		protected.POST("/register", h.register)
	}
	registerMemberManagementRoutes(protected.Group("/members"), services.Member)
}

func (h *adminAuthHandler) loginResponse(c *gin.Context, admin *domain.Admin, pair *domain.TokenPair) dto.AdminLoginResponse {
	h.cookie.set(c, pair.RefreshToken, pair.RefreshTokenExpiresAt)
	return dto.AdminLoginResponse{
		TokenResponse: dto.ToTokenResponse(pair),
		Admin:         dto.ToAdminResponse(admin),
	}
}

// login godoc
// @Summary Admin login
// @Description Authenticates an admin with email and password and returns an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Response{data=dto.AdminLoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response "Invalid email or password"
// @Failure 403 {object} dto.Response "Admin account is inactive"
// @Failure 429 {object} dto.Response
// @Router /auth/admin/login [post]
func (h *adminAuthHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	admin, pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Admin login failed")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Admin logged in", slog.String("admin_id", admin.AdminID))
	respondSuccess(c, http.StatusOK, "Login successful", h.loginResponse(c, admin, pair))
}

// refresh godoc
// @Summary Refresh admin tokens
// @Description Exchanges a refresh token (body or cookie) for a new token pair. The presented token is invalidated.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} dto.Response{data=dto.AdminLoginResponse}
// @Failure 401 {object} dto.Response
// @Router /auth/admin/refresh [post]
func (h *adminAuthHandler) refresh(c *gin.Context) {
	token, err := h.cookie.token(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	admin, pair, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		h.cookie.clear(c)
		respondError(c, err, "Admin token refresh failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Token refreshed", h.loginResponse(c, admin, pair))
}

// logout godoc
// @Summary Admin logout
// @Description Revokes the admin's refresh token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /auth/admin/logout [post]
func (h *adminAuthHandler) logout(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), actor.ID); err != nil {
		respondError(c, err, "Admin logout failed")
		return
	}
	h.cookie.clear(c)
	respondSuccess(c, http.StatusOK, "Logged out", nil)
}

// me godoc
// @Summary Current admin
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=dto.AdminResponse}
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /auth/admin/me [get]
func (h *adminAuthHandler) me(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	admin, err := h.authService.GetAdminByID(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to load admin profile")
		return
	}
	respondSuccess(c, http.StatusOK, "Admin profile", dto.ToAdminResponse(admin))
}

// register godoc
// @Summary Register admin
// @Description Creates another admin account. Admin only.
// @Tags auth
// @Accept json
// @Produce json
// @Param admin body dto.RegisterAdminRequest true "Admin details"
// @Success 201 {object} dto.Response{data=dto.AdminResponse}
// @Failure 400 {object} dto.Response "Validation error or email already registered"
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Security BearerAuth
// @Router /auth/admin/register [post]
func (h *adminAuthHandler) register(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	admin, err := h.authService.RegisterAdmin(c.Request.Context(), req, actor.ID)
	if err != nil {
		respondError(c, err, "Failed to register admin")
		return
	}
	respondSuccess(c, http.StatusCreated, "Admin registered", dto.ToAdminResponse(admin))
}

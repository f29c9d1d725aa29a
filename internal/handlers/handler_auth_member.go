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

// memberAuthHandler handles member portal authentication.
type memberAuthHandler struct {
	authService   portssvc.MemberAuthSvc
	memberService portssvc.MemberReaderSvc
	cookie        refreshCookie
}

func newMemberAuthHandler(as portssvc.MemberAuthSvc, ms portssvc.MemberReaderSvc, cfg *config.Config) *memberAuthHandler {
	return &memberAuthHandler{
		authService:   as,
		memberService: ms,
		cookie:        newRefreshCookie(cfg, domain.RoleMember),
	}
}

func registerMemberAuthRoutes(
	rg *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authenticated, memberOnly, rateLimited gin.HandlerFunc,
) {
	h := newMemberAuthHandler(services.MemberAuth, services.Member, cfg)

	rg.POST("/login", rateLimited, h.login)
	rg.POST("/register", rateLimited, h.register)
	rg.POST("/refresh", h.refresh)

	protected := rg.Group("", authenticated, memberOnly)
	{
		protected.POST("/logout", h.logout)
		protected.GET("/me", h.me)
	}
}

func (h *memberAuthHandler) loginResponse(c *gin.Context, member *domain.Member, pair *domain.TokenPair) dto.MemberLoginResponse {
	h.cookie.set(c, pair.RefreshToken, pair.RefreshTokenExpiresAt)
	return dto.MemberLoginResponse{
		TokenResponse: dto.ToTokenResponse(pair),
		Member:        dto.ToMemberResponse(member),
	}
}

// login godoc
// @Summary Member login
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Response{data=dto.MemberLoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response "Invalid email or password"
// @Failure 403 {object} dto.Response "Member account is suspended"
// @Failure 429 {object} dto.Response
// @Router /auth/member/login [post]
func (h *memberAuthHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Member login failed")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Member logged in", slog.String("member_id", member.MemberID))
	respondSuccess(c, http.StatusOK, "Login successful", h.loginResponse(c, member, pair))
}

// register godoc
// @Summary Member self-registration
// @Description Creates an ACTIVE member account with zero gold holdings.
// @Tags auth
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.Response{data=dto.MemberResponse}
// @Failure 400 {object} dto.Response "Validation error or email already registered"
// @Failure 429 {object} dto.Response
// @Router /auth/member/register [post]
func (h *memberAuthHandler) register(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Member registration failed")
		return
	}
	respondSuccess(c, http.StatusCreated, "Registration successful", dto.ToMemberResponse(member))
}

// refresh godoc
// @Summary Refresh member tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest false "Refresh token"
// @Success 200 {object} dto.Response{data=dto.MemberLoginResponse}
// @Failure 401 {object} dto.Response
// @Router /auth/member/refresh [post]
func (h *memberAuthHandler) refresh(c *gin.Context) {
	token, err := h.cookie.token(c)
	if err != nil {
		respondBindError(c, err)
		return
	}

	member, pair, err := h.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		h.cookie.clear(c)
		respondError(c, err, "Member token refresh failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Token refreshed", h.loginResponse(c, member, pair))
}

// logout godoc
// @Summary Member logout
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /auth/member/logout [post]
func (h *memberAuthHandler) logout(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.authService.Logout(c.Request.Context(), actor.ID); err != nil {
		respondError(c, err, "Member logout failed")
		return
	}
	h.cookie.clear(c)
	respondSuccess(c, http.StatusOK, "Logged out", nil)
}

// me godoc
// @Summary Current member
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=dto.MemberResponse}
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /auth/member/me [get]
func (h *memberAuthHandler) me(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	member, err := h.memberService.GetMemberByID(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "Failed to load member profile")
		return
	}
	respondSuccess(c, http.StatusOK, "Member profile", dto.ToMemberResponse(member))
}

package handlers

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/dto"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/platform/config"
)

// refreshCookie writes the refresh token as an HttpOnly cookie scoped to one
// portal's auth routes, so admin and member sessions in one browser don't collide.
type refreshCookie struct {
	name   string
	path   string
	secure bool
}

func newRefreshCookie(cfg *config.Config, role domain.Role) refreshCookie {
	return refreshCookie{
		name:   cfg.RefreshTokenCookieName,
		path:   cfg.RefreshTokenCookiePath + "/" + string(role),
		secure: cfg.IsProduction,
	}
}

func (rc refreshCookie) set(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(rc.name, token, maxAge, rc.path, "", rc.secure, true)
}

func (rc refreshCookie) clear(c *gin.Context) {
	c.SetCookie(rc.name, "", -1, rc.path, "", rc.secure, true)
}

// token reads the refresh token from the JSON body, falling back to the cookie.
// An empty body is allowed.
func (rc refreshCookie) token(c *gin.Context) (string, error) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if req.RefreshToken != "" {
		return req.RefreshToken, nil
	}
	if cookie, err := c.Cookie(rc.name); err == nil {
		return cookie, nil
	}
	return "", nil
}

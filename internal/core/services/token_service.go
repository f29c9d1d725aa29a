package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/apperrors"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	portssvc "github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/ports/services"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/platform/config"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/utils"
)

// tokenService signs access tokens with the JWT secret and refresh tokens with
// the refresh secret, so neither can stand in for the other.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given account.
func (s *tokenService) GenerateAccessToken(ctx context.Context, subject string, role domain.Role) (string, time.Time, error) {
	return utils.GenerateJWT(subject, role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}

// GenerateRefreshToken creates a new refresh token for the given account.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, subject string, role domain.Role) (string, time.Time, error) {
	return utils.GenerateJWT(subject, role, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
}

func (s *tokenService) ParseRefreshToken(ctx context.Context, refreshToken string, role domain.Role) (string, error) {
	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.ErrRefreshTokenExpired
		}
		return "", fmt.Errorf("%w: invalid refresh token: %v", apperrors.ErrUnauthorized, err)
	}
	if claims.Role != role {
		return "", fmt.Errorf("%w: refresh token issued for role %s", apperrors.ErrUnauthorized, claims.Role)
	}
	return claims.Subject, nil
}

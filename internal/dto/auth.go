package dto

import (
	"time"

	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// LoginRequest is the body of both login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token when it is not sent as a cookie.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisterAdminRequest creates a new admin account.
type RegisterAdminRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// TokenResponse holds a freshly issued access/refresh token pair.
type TokenResponse struct {
	AccessToken           string    `json:"accessToken"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt"`
	RefreshToken          string    `json:"refreshToken"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt"`
	TokenType             string    `json:"tokenType"`
}

// AdminLoginResponse is returned by admin login and refresh.
type AdminLoginResponse struct {
	TokenResponse
	Admin AdminResponse `json:"admin"`
}

// MemberLoginResponse is returned by member login and refresh.
type MemberLoginResponse struct {
	TokenResponse
	Member MemberResponse `json:"member"`
}

// AdminResponse is the public view of an admin.
type AdminResponse struct {
	AdminID   string    `json:"adminID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ToTokenResponse converts a domain.TokenPair to TokenResponse DTO
func ToTokenResponse(p *domain.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:           p.AccessToken,
		AccessTokenExpiresAt:  p.AccessTokenExpiresAt,
		RefreshToken:          p.RefreshToken,
		RefreshTokenExpiresAt: p.RefreshTokenExpiresAt,
		TokenType:             "Bearer",
	}
}

// ToAdminResponse converts a domain.Admin to AdminResponse DTO
func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		AdminID:   a.AdminID,
		Name:      a.Name,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		CreatedBy: a.CreatedBy,
	}
}

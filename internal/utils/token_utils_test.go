package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := GenerateJWT("member-1", domain.RoleMember, testSecret, time.Hour, "gold-portfolio-test")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "member-1", claims.Subject)
	assert.Equal(t, domain.RoleMember, claims.Role)
	assert.Equal(t, "gold-portfolio-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, _, err := GenerateJWT("admin-1", domain.RoleAdmin, testSecret, time.Hour, "iss")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "some-other-secret")
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestParseJWT_Expired(t *testing.T) {
	token, _, err := GenerateJWT("admin-1", domain.RoleAdmin, testSecret, -time.Minute, "iss")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_MissingRole(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(signed, testSecret)
	assert.Error(t, err)
}

func TestTokensAreUnique(t *testing.T) {
	a, _, err := GenerateJWT("member-1", domain.RoleMember, testSecret, time.Hour, "iss")
	require.NoError(t, err)
	b, _, err := GenerateJWT("member-1", domain.RoleMember, testSecret, time.Hour, "iss")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRefreshTokenHash(t *testing.T) {
	hash := HashRefreshToken("raw-token")
	assert.Len(t, hash, 64)
	assert.True(t, CompareRefreshTokenHash("raw-token", hash))
	assert.False(t, CompareRefreshTokenHash("other-token", hash))
	assert.False(t, CompareRefreshTokenHash("raw-token", ""))
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

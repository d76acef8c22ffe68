// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/snackshop-backend/internal/config"
)

func testJWTService() *JWTService {
	cfg := &config.Config{}
	cfg.App.Name = "snackshop-test"
	cfg.JWT.Secret = "test-secret-at-least-32-characters!!"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 7 * 24 * time.Hour
	return NewJWTService(cfg)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService()

	token, err := svc.GenerateToken(42, "max@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "max@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "snackshop-test", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testJWTService()

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testJWTService()

	other := &config.Config{}
	other.JWT.Secret = "a-completely-different-secret-value!"
	other.JWT.AccessTokenExpiry = 15 * time.Minute
	otherSvc := NewJWTService(other)

	token, err := otherSvc.GenerateToken(1, "a@example.com", "customer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-at-least-32-characters!!"
	cfg.JWT.AccessTokenExpiry = -time.Minute
	svc := NewJWTService(cfg)

	token, err := svc.GenerateToken(1, "a@example.com", "customer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPassword("s3cret-password", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

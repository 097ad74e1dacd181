package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:           "test-secret",
		AccessExpiration: 15,
		Issuer:           "angkutin-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "jane", models.RoleCustomer, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, models.RoleCustomer, claims.Role)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken(uuid.New(), "jane", models.RoleDriver, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessExpiration = -1

	token, _, err := GenerateToken(uuid.New(), "jane", models.RoleAdmin, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

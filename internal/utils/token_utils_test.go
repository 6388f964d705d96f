package utils_test

import (
	"testing"
	"time"

	"github.com/shopbook/shopbook_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", time.Hour, "shopbook-backend")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "shopbook-backend", claims.Issuer)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", time.Hour, "shopbook-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpiredRejected(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", -time.Minute, "shopbook-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("secret123", hash))
	assert.False(t, utils.CheckPasswordHash("secret124", hash))
}

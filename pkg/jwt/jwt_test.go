package jwt

import (
	"testing"
	"time"

	"github.com/3bwahab/asd-healthcare-platform/config"
	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(accessExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		token, tokenID, err := svc.GenerateAccessToken(userID, "doctor@example.com", entity.RoleIDDoctor)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.NotEmpty(t, tokenID)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "doctor@example.com", claims.Email)
		assert.Equal(t, entity.RoleIDDoctor, claims.RoleID)
		assert.Equal(t, AccessToken, claims.TokenType)
		assert.Equal(t, tokenID, claims.TokenID)
	})

	t.Run("refresh token carries refresh type", func(t *testing.T) {
		token, _, err := svc.GenerateRefreshToken(userID, "parent@example.com", entity.RoleIDParent)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, RefreshToken, claims.TokenType)
		assert.Equal(t, entity.RoleIDParent, claims.RoleID)
	})

	t.Run("token IDs are unique per issue", func(t *testing.T) {
		_, first, err := svc.GenerateAccessToken(userID, "doctor@example.com", entity.RoleIDDoctor)
		require.NoError(t, err)
		_, second, err := svc.GenerateAccessToken(userID, "doctor@example.com", entity.RoleIDDoctor)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestValidateTokenFailures(t *testing.T) {
	svc := newTestService(15 * time.Minute)
	userID := uuid.New()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-jwt")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := svc.GenerateAccessToken(userID, "doctor@example.com", entity.RoleIDDoctor)
		require.NoError(t, err)

		other := NewJWTService(config.JWTConfig{Secret: "another-secret", AccessExpiry: 15 * time.Minute})
		_, err = other.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := newTestService(-1 * time.Minute)
		token, _, err := expired.GenerateAccessToken(userID, "doctor@example.com", entity.RoleIDDoctor)
		require.NoError(t, err)

		_, err = expired.ValidateToken(token)
		assert.Error(t, err)
	})
}

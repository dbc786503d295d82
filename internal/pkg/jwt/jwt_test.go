//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"wedding-analytics/internal/domain/user"
	"wedding-analytics/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("success: round trip keeps user and role", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, jwt.Issuer, claims.Issuer)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("secret", time.Hour).GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = jwt.NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("error: expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("error: garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

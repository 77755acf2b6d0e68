package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/studenthub/internal/app/repositories"
	"github.com/campushq/studenthub/internal/config"
	"github.com/campushq/studenthub/internal/pkg/apperrors"
	"github.com/campushq/studenthub/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *auth.JWTService) {
	t.Helper()

	userRepo, err := repositories.NewInMemoryUserRepository([]config.CredentialEntry{
		{Username: "admin", Password: "admin123", Roles: []string{"Admin"}},
		{Username: "moderator", Password: "mod123", Roles: []string{"Moderator"}},
	})
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key-for-unit-tests",
		TokenExpiration: time.Hour,
		Issuer:          "studenthub.test",
		Audience:        "studenthub-api-test",
	})

	return NewAuthService(userRepo, jwtService, zerolog.Nop()), jwtService
}

func TestAuthService_Login(t *testing.T) {
	svc, jwtService := newTestAuthService(t)

	t.Run("correct credentials yield a token with the configured roles", func(t *testing.T) {
		token, expiresIn, user, err := svc.Login("admin", "admin123")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, 3600, expiresIn)
		assert.Equal(t, "admin", user.Username)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, []string{"Admin"}, claims.Roles)
	})

	t.Run("username lookup is case-insensitive", func(t *testing.T) {
		token, _, _, err := svc.Login("ADMIN", "admin123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password yields no token", func(t *testing.T) {
		token, _, user, err := svc.Login("admin", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("unknown user yields the same rejection signal", func(t *testing.T) {
		_, _, _, errUnknown := svc.Login("ghost", "whatever")
		_, _, _, errBadPass := svc.Login("admin", "wrong")
		assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
		assert.Equal(t, errBadPass, errUnknown)
	})
}

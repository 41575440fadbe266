package integration

import (
	"context"
	"testing"

	"tutorhive-be/internal/config"
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/repository/unitofwork"
	"tutorhive-be/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A user holds one active refresh token: every issue revokes the
// previous one, and a rotated token cannot be replayed.
func TestRefreshTokenRotation(t *testing.T) {
	gormDB := openTestDB(t)
	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	authService := service.NewAuthService(uowFactory, config.AuthConfig{
		JWTSecret:           "integration-secret",
		AccessTokenTTLMin:   15,
		RefreshTokenTTLDays: 30,
	})

	email := "rotate-" + uuid.NewString() + "@example.com"
	registered, err := authService.Register(ctx, &dto.RegisterRequest{
		Email:    email,
		Password: "password123",
		FullName: "Rotation Tester",
		Role:     "student",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.RefreshToken)

	loggedIn, err := authService.Login(ctx, &dto.LoginRequest{
		Email:    email,
		Password: "password123",
	}, "127.0.0.1", "go-test")
	require.NoError(t, err)

	// Login rotated: the register-issued token is revoked.
	_, err = authService.Refresh(ctx, registered.RefreshToken, "127.0.0.1", "go-test")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	// The live token refreshes once and yields a new one.
	refreshed, err := authService.Refresh(ctx, loggedIn.RefreshToken, "127.0.0.1", "go-test")
	require.NoError(t, err)
	assert.NotEqual(t, loggedIn.RefreshToken, refreshed.RefreshToken)

	// The presented token was consumed by that rotation.
	_, err = authService.Refresh(ctx, loggedIn.RefreshToken, "127.0.0.1", "go-test")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	// Logout is idempotent on an already-revoked token.
	assert.NoError(t, authService.Logout(ctx, loggedIn.RefreshToken))
}

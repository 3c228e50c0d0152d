package usecase

import (
	"context"
	"testing"
	"time"

	"vitalscan-booking-api/config"
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUsecase(t *testing.T, h *harness) (AuthUsecase, *jwt.JWTService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: 15 * time.Minute,
	})

	uc := NewAuthUsecase(logrus.New(), h.redisClient, jwtService, h.audit, config.AdminConfig{
		Email:        "staff@vitalscan.example",
		PasswordHash: string(hash),
	})
	return uc, jwtService
}

func TestLoginIssuesRevocableToken(t *testing.T) {
	h := newHarness(t)
	uc, jwtService := newAuthUsecase(t, h)
	ctx := context.Background()

	resp, err := uc.Login(ctx, &dto.LoginRequest{
		Email:    "staff@vitalscan.example",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "staff@vitalscan.example", claims.Email)

	// The token id is registered for revocation checks.
	exists, err := h.redisClient.Exists(ctx, "access_token:admin:"+claims.TokenID).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)

	require.NoError(t, uc.Logout(ctx, claims.TokenID))

	exists, err = h.redisClient.Exists(ctx, "access_token:admin:"+claims.TokenID).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), exists)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newHarness(t)
	uc, _ := newAuthUsecase(t, h)
	ctx := context.Background()

	_, err := uc.Login(ctx, &dto.LoginRequest{
		Email:    "intruder@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(ctx, &dto.LoginRequest{
		Email:    "staff@vitalscan.example",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

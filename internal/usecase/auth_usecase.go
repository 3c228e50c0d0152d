package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"vitalscan-booking-api/config"
	"vitalscan-booking-api/internal/delivery/dto"
	"vitalscan-booking-api/internal/domain/entity"
	"vitalscan-booking-api/internal/service"
	"vitalscan-booking-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthUsecase authenticates the clinic staff login configured in the
// environment. Issued token ids are stored in Redis so logout can revoke
// a token before it expires.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, tokenID string) error
}

type authUsecase struct {
	log         *logrus.Logger
	redisClient *redis.Client
	jwtService  *jwt.JWTService
	audit       service.AuditService
	admin       config.AdminConfig
}

func NewAuthUsecase(
	log *logrus.Logger,
	redisClient *redis.Client,
	jwtService *jwt.JWTService,
	audit service.AuditService,
	admin config.AdminConfig,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		redisClient: redisClient,
		jwtService:  jwtService,
		audit:       audit,
		admin:       admin,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Email), []byte(u.admin.Email)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, tokenID, err := u.jwtService.GenerateAccessToken(req.Email)
	if err != nil {
		u.log.Errorf("Failed to sign access token: %+v", err)
		return nil, err
	}

	tokenKey := fmt.Sprintf("access_token:admin:%s", tokenID)
	if err := u.redisClient.Set(ctx, tokenKey, req.Email, u.jwtService.AccessExpiry()).Err(); err != nil {
		u.log.Errorf("Failed to register access token: %+v", err)
		return nil, err
	}

	u.audit.Record(ctx, req.Email, entity.AuditActionAdminLogin, nil)

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(u.jwtService.AccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, tokenID string) error {
	tokenKey := fmt.Sprintf("access_token:admin:%s", tokenID)
	if err := u.redisClient.Del(ctx, tokenKey).Err(); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}
	u.audit.Record(ctx, u.admin.Email, entity.AuditActionAdminLogout, nil)
	return nil
}

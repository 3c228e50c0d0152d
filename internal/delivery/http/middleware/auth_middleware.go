package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"vitalscan-booking-api/pkg/jwt"
	"vitalscan-booking-api/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	AdminEmailKey contextKey = "admin_email"
	TokenIDKey    contextKey = "token_id"
)

// AuthMiddleware guards the staff endpoints. A token must be signed,
// unexpired, and still registered in Redis (logout revokes it early).
type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		tokenKey := fmt.Sprintf("access_token:admin:%s", claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), AdminEmailKey, claims.Email)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminEmailFromContext extracts the authenticated staff email.
func GetAdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AdminEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts the token id for revocation.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

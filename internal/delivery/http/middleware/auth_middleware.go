package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/3bwahab/asd-healthcare-platform/internal/domain/entity"
	"github.com/3bwahab/asd-healthcare-platform/pkg/jwt"
	"github.com/3bwahab/asd-healthcare-platform/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
	TokenIDKey   contextKey = "token_id"
)

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

// Authenticate validates the bearer token and attaches the typed principal
// to the request context. Downstream code never sees raw claims; it sees a
// DoctorPrincipal, ParentPrincipal, or AdminPrincipal.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]

		// Validate JWT token
		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check if it's an access token
		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Check if token exists in Redis (not revoked)
		tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		principal := entity.PrincipalFromRoleID(claims.RoleID, claims.UserID, claims.Email)
		if principal == nil {
			response.Unauthorized(w, "Unknown role")
			return
		}

		ctx := context.WithValue(r.Context(), PrincipalKey, principal)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipalFromContext extracts the authenticated principal from context
func GetPrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(entity.Principal)
	return principal, ok
}

// GetDoctorFromContext extracts the doctor variant; ok is false when the
// principal is absent or of another role
func GetDoctorFromContext(ctx context.Context) (entity.DoctorPrincipal, bool) {
	doctor, ok := ctx.Value(PrincipalKey).(entity.DoctorPrincipal)
	return doctor, ok
}

// GetParentFromContext extracts the parent variant
func GetParentFromContext(ctx context.Context) (entity.ParentPrincipal, bool) {
	parent, ok := ctx.Value(PrincipalKey).(entity.ParentPrincipal)
	return parent, ok
}

// GetUserIDFromContext extracts the principal's user ID regardless of role
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipalFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return principal.PrincipalID(), true
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

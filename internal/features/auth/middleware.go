package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hamzarauf/linkora/internal/config"
	"github.com/hamzarauf/linkora/internal/pkg/jwt"
	"github.com/hamzarauf/linkora/internal/pkg/response"
)

// NewAuthMiddleware creates a Gin middleware that validates the bearer token
// and resolves the requesting user exactly once per request. Handlers read
// the requester from the context instead of doing their own session lookups.
func NewAuthMiddleware(repo *Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, cfg.JWTSecret)
		if !ok {
			c.Abort()
			return
		}

		user, err := repo.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			response.Unauthorized(c, "User not found", "USER_NOT_FOUND")
			c.Abort()
			return
		}

		// Feeds the activityLevel recommendation factor.
		_ = repo.TouchLastActive(c.Request.Context(), user.ID)

		c.Set("user", user)
		c.Set("userID", user.ID.Hex())
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the user when a valid token is present but
// lets anonymous requests through
func OptionalAuthMiddleware(repo *Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		claims, err := jwt.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		if user, err := repo.GetUserByID(c.Request.Context(), claims.UserID); err == nil && user != nil {
			c.Set("user", user)
			c.Set("userID", user.ID.Hex())
		}
		c.Next()
	}
}

// RequesterFrom extracts the resolved user from the gin context
func RequesterFrom(c *gin.Context) (*User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := val.(*User)
	return user, ok
}

func bearerClaims(c *gin.Context, secret string) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
		return nil, false
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
		return nil, false
	}

	claims, err := jwt.ValidateToken(parts[1], secret)
	if err != nil {
		response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
		return nil, false
	}

	return claims, true
}

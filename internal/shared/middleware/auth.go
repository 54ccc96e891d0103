package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"landing-cms-backend/internal/shared/response"
	"landing-cms-backend/pkg/jwt"
)

const ContextUserKey = "authUser"

// AuthMiddleware guards mutation routes with a Bearer JWT. The check runs
// before any handler work, so unauthorized requests never touch storage.
// Missing token is 401, present-but-invalid is 403, matching the admin
// console's expectations.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claims set by AuthMiddleware, or nil on
// unauthenticated routes.
func CurrentUser(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		return nil
	}
	return claims
}

package middleware

import (
	"net/http"
	"strings"

	"motionklub/internal/pkg/jwt"
	"motionklub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth chain.
const (
	ContextClientID = "client_id"
	ContextRole     = "role"
	ContextSession  = "session"
)

// JWTAuth validates the bearer token and exposes its client id and role.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Token is invalid or expired")
			c.Abort()
			return
		}

		c.Set(ContextClientID, claims.ClientID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

package middleware

import (
	"net/http"

	"motionklub/internal/domain"
	"motionklub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated client has the specified role
func RequireRole(requiredRole domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != string(requiredRole) {
			response.Error(c, http.StatusForbidden, response.CodeForbidden, "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func GuestOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleGuest)
}

func AnimatorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAnimator)
}

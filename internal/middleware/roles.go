package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole guards a route group behind a single role. Runs after
// AuthMiddleware, which sets the role in context.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := c.Get(ContextUserRole)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
			return
		}

		if current.(string) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}

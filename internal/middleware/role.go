package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole lets a request through only when the role claim stored by
// AuthMiddleware is one of allowed. It must run after AuthMiddleware.
func RequireRole(allowed ...string) gin.HandlerFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(KeyRole)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing from token"})
			return
		}
		if _, ok := set[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not allowed: " + role})
			return
		}
		c.Next()
	}
}

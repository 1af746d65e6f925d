package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireScope rejects requests whose token lacks the given scope.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		scopes := c.GetStringSlice(ContextScopesKey)
		for _, s := range scopes {
			if s == scope {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient scope"})
	}
}

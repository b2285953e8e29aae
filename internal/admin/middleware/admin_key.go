package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware gates the verification dashboard behind a shared
// secret from config. This is boundary-level access control only; it
// is no substitute for a real credential system.
func AdminKeyMiddleware(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")

		if expected == "" || key == "" || key != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "invalid admin key",
			})
			return
		}

		c.Next()
	}
}

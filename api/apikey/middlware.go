// Package apikey guards the maintenance routes with a static API key.
package apikey

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authoriz returns a middleware that rejects requests whose
// Authorization header does not carry the configured bearer key.
func Authoriz(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access key from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No key found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the key.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(key)) != 1 {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}

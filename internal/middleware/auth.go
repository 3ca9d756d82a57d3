package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyToken is the Gin context key the bearer token is stored under.
const ContextKeyToken = "access_token"

// BearerToken requires an Authorization: Bearer header and injects the raw
// token into the request context. The token is not verified here; it is
// passed through to the upstream API, which rejects bad tokens itself.
func BearerToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "TOKEN_REQUIRED", "message": "access token required"},
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "TOKEN_REQUIRED", "message": "access token required"},
			})
			return
		}

		c.Set(ContextKeyToken, token)
		c.Next()
	}
}

// GetToken extracts the bearer token from the Gin context.
func GetToken(c *gin.Context) string {
	val, exists := c.Get(ContextKeyToken)
	if !exists {
		return ""
	}
	return val.(string)
}

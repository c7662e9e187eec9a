package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"cafetaria/internal/token" // Token verification

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys populated by Auth for downstream handlers
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth validates the bearer token and stores the authenticated principal's
// username and role in the request context.
func Auth(tokens *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"statusCode": http.StatusUnauthorized,
				"message":    "Missing or invalid Authorization header",
			})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := tokens.Verify(tokenStr)                // Verify signature and expiry
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"statusCode": http.StatusUnauthorized,
				"message":    "Invalid or expired token",
			})
			return
		}
		c.Set(CtxUsername, claims.Username) // Store username in context
		c.Set(CtxRole, claims.Role)         // Store role in context
		c.Next()                            // Proceed to the next handler
	}
}

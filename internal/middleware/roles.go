package middleware

import (
	"net/http" // HTTP status codes

	"cafetaria/internal/domain" // Role enum

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRoles enforces role-based access control. The role claim carried by
// the verified token is checked against the endpoint's allowed roles; no
// extra DB lookup is made.
func RequireRoles(allowedRoles ...domain.RoleName) gin.HandlerFunc {
	allowed := make(map[domain.RoleName]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role, ok := c.Get(CtxRole) // Role set by the Auth middleware
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"statusCode": http.StatusForbidden,
				"message":    "Access denied",
			})
			return
		}
		roleName, ok := role.(domain.RoleName)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"statusCode": http.StatusForbidden,
				"message":    "Access denied",
			})
			return
		}
		if _, ok := allowed[roleName]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"statusCode": http.StatusForbidden,
				"message":    "Access denied",
			})
			return
		}
		c.Next() // Role allowed, proceed
	}
}

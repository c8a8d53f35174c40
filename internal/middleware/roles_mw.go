package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job_portal/internal/model"
)

// RoleMiddleware checks the session identity against the allowed roles.
// SessionAuthMiddleware must run first.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(IdentityKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Bạn chưa đăng nhập"})
			return
		}

		identity, ok := val.(model.Identity)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Bạn chưa đăng nhập"})
			return
		}

		for _, role := range allowedRoles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Bạn không có quyền truy cập"})
	}
}

// AdminMiddleware restricts a route group to administrators
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}

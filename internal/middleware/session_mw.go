package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job_portal/internal/service"
)

const (
	// SessionCookie carries the signed session token, HttpOnly.
	SessionCookie = "session_token"
	// IdentityKey is the gin context key for the resolved identity.
	IdentityKey = "authIdentity"
)

// SessionAuthMiddleware resolves the session cookie to an identity and
// aborts with 401 when there is no live session.
func SessionAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Bạn chưa đăng nhập"})
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lỗi server"})
			return
		}
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Bạn chưa đăng nhập"})
			return
		}

		c.Set(IdentityKey, *identity)
		c.Next()
	}
}

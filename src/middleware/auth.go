package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitevoice/complaints-server/src/services"
)

// SessionCookieName is the cookie carrying the opaque session token
const SessionCookieName = "session_token"

// AdminIDKey is the context key holding the authenticated admin's id
const AdminIDKey = "admin_id"

// RequireAdmin gates a route behind a valid admin session cookie.
// Absent, expired, and revoked sessions all yield the same 401.
func RequireAdmin(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		session, err := sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify session"})
			}
			c.Abort()
			return
		}

		c.Set(AdminIDKey, session.AdminID)
		c.Next()
	}
}

// GetAdminID retrieves the authenticated admin id from context
func GetAdminID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(AdminIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

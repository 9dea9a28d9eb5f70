package middleware

import (
	"net/http"

	"staybook/config"
	"staybook/models"
	"staybook/session"

	"github.com/gin-gonic/gin"
)

const (
	// SessionKey is the gin context key holding the *session.Handle.
	SessionKey = "sessionHandle"
	// UserKey is the gin context key holding the models.User.
	UserKey = "user"
)

// unauthorized aborts with a login redirect carrying the return path.
func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    message,
		"redirect": "/login?next=" + c.Request.URL.Path,
	})
}

// SessionAuth loads the browser session from the cookie and injects the
// session handle into the request context. Tokens close to expiry are
// refreshed proactively before the request proceeds.
func SessionAuth(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(config.AppConfig.SessionCookieName)
		if err != nil || sid == "" {
			unauthorized(c, "Please log in to continue")
			return
		}

		sess, err := mgr.Get(c.Request.Context(), sid)
		if err != nil {
			unauthorized(c, "Your session has expired. Please log in again.")
			return
		}

		handle := mgr.Handle(sid, sess)
		handle.EnsureFresh(c.Request.Context(), config.TokenRefreshSkew())

		c.Set(SessionKey, handle)
		c.Set(UserKey, sess.User)
		c.Next()
	}
}

// RequireAdmin gates back-office routes on the cached user role. The
// platform re-checks the role server-side on every admin call.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(UserKey)
		if !exists {
			unauthorized(c, "Please log in to continue")
			return
		}
		user, ok := val.(models.User)
		if !ok || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// Handle extracts the session handle set by SessionAuth.
func Handle(c *gin.Context) *session.Handle {
	val, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	handle, _ := val.(*session.Handle)
	return handle
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fabclean/laundry-api/internal/session"
)

const ContextAdminID = "adminID"

// AdminAuthMiddleware gates the admin surface behind a redis-backed session
// token. Every /admin/api route goes through here, none are left open.
func AdminAuthMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := adminToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_admin_session"})
			return
		}

		adminID, err := store.Get(c.Request.Context(), token)
		if err == session.ErrNotFound {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_admin_session"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_store_unavailable"})
			return
		}

		c.Set(ContextAdminID, adminID)
		c.Next()
	}
}

func adminToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	// the admin SPA sends the token as a cookie
	if cookie, err := c.Cookie("admin_session"); err == nil {
		return cookie
	}

	return ""
}

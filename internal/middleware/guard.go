package middleware

import (
	"net/http"

	"github.com/dsavelev/todoweb/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

var (
	protectedPaths = map[string]bool{
		dashboardPath: true,
	}
	publicPaths = map[string]bool{
		loginPath:   true,
		"/register": true,
	}
)

// SessionGuard enforces path-based authentication for page routes.
// Protected pages redirect unauthenticated clients to the login page;
// auth pages redirect authenticated clients to the dashboard. Every
// other path passes through untouched. The decision is re-derived from
// the cookie on each request; nothing is shared across requests.
func SessionGuard(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isProtected := protectedPaths[path]
		isPublic := publicPaths[path]

		if !isProtected && !isPublic {
			c.Next()
			return
		}

		userID, ok := sessions.Current(c)

		if isProtected && !ok {
			// A cookie that was present but failed to decode is dead;
			// clear it so the client stops resubmitting it.
			if _, err := c.Cookie(session.CookieName); err == nil {
				sessions.Clear(c)
			}
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if isPublic && ok {
			c.Redirect(http.StatusFound, dashboardPath)
			c.Abort()
			return
		}

		if isProtected {
			c.Set(ContextKeyUserID, userID)
		}
		c.Next()
	}
}

package middleware

import (
	"github.com/dsavelev/todoweb/internal/apierrors"
	"github.com/dsavelev/todoweb/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyUserID is the gin context key for the authenticated user ID.
const ContextKeyUserID = "user_id"

// RequireAuth rejects API requests without a valid session cookie.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessions.Current(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}

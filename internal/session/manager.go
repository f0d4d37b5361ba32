package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName is the session cookie carried by the client.
const CookieName = "session"

// Manager writes and reads the session cookie. The cookie is HttpOnly
// always, Secure in production, SameSite=Lax, with a max-age matching
// the token's TTL.
type Manager struct {
	codec  *Codec
	ttl    time.Duration
	secure bool
}

func NewManager(codec *Codec, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		codec:  codec,
		ttl:    ttl,
		secure: secure,
	}
}

// Issue signs a token for userID and sets it as the session cookie.
func (m *Manager) Issue(c *gin.Context, userID uuid.UUID) error {
	token, err := m.codec.Encode(userID, m.ttl)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Current returns the authenticated user ID from the request's session
// cookie, or false when the cookie is absent or fails verification.
func (m *Manager) Current(c *gin.Context) (uuid.UUID, bool) {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return uuid.Nil, false
	}

	userID, err := m.codec.Decode(token)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// Clear expires the session cookie.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

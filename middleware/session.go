package middleware

import (
	"biscenic-store/config"
	"biscenic-store/services"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "biscenic_session"

// SessionMiddleware resolves the caller's browsing session from the
// session cookie, creating one when missing or expired. The session object
// travels through the request context; nothing reads ambient globals.
func SessionMiddleware(store *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *services.Session

		if id, err := c.Cookie(SessionCookie); err == nil {
			if existing, ok := store.Get(id); ok {
				session = existing
			}
		}

		if session == nil {
			session = store.Create()
			maxAge := int(config.AppConfig.SessionTTL.Seconds())
			c.SetCookie(SessionCookie, session.ID, maxAge, "/", "", false, true)
		}

		c.Set("session", session)
		c.Next()
	}
}

func GetSession(c *gin.Context) *services.Session {
	value, exists := c.Get("session")
	if !exists {
		return nil
	}
	session, _ := value.(*services.Session)
	return session
}

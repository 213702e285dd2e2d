package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookie = "sid"

// SessionMiddleware makes sure every visitor carries a session identifier
// cookie. The identifier keys that visitor's cart and auth state in storage.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, 60*60*24*30, "/", "", false, true)
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}

package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "ps_session"
	sessionCtxKey = "sessionID"

	// Cookie lifetime mirrors the original's "one browser profile" model:
	// the cart belongs to whoever holds the cookie, for as long as they
	// keep it.
	sessionMaxAge = 365 * 24 * 60 * 60
)

// sessionMiddleware assigns each browser profile a stable id. The id scopes
// the cart snapshot and the last-cart recovery key.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}

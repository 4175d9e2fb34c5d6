package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName is the opaque per-browser session identifier cookie.
const CookieName = "session_id"

const contextKey = "session_id"

// cookie lifetime; the cart a session owns has no other expiry
const maxAge = 30 * 24 * 60 * 60

// Middleware assigns an opaque session id to each browser, carried in a
// cookie, and exposes it to handlers via the request context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(CookieName, id, maxAge, "/", "", false, true)
		}
		c.Set(contextKey, id)
		c.Next()
	}
}

// ID returns the session id the middleware attached to the request.
func ID(c *gin.Context) string {
	return c.GetString(contextKey)
}

// RegisterRoutes exposes the session id so the storefront can hold on to it.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sessionId": ID(c)})
	})
}

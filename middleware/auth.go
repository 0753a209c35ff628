package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

const sessionKey = "session"

// RequireSession is the first gate: no session means the browser is sent to
// the login page, with the attempted path preserved so login can come back.
// The session state is synchronously available from the cookie; there is no
// loading state.
func RequireSession(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := store.Current(c)
		if !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, "/login?next="+next)
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// RequireRole is the second gate: a valid session whose role is outside the
// route's allow-list lands on the unauthorized page, never the content.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if s.Role == role {
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusSeeOther, "/unauthorized")
		c.Abort()
	}
}

// CurrentSession returns the session RequireSession stashed on the context.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

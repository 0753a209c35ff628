// Package handlers holds the page handlers. Every data-bearing page follows
// the same shape: fetch through the API access layer, render; mutations POST,
// then redirect back so the re-render refetches backend state as ground truth
// instead of patching anything locally.
package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/middleware"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

// baseContext seeds the template data every page shares: the current session
// (for the role-aware header) and the page title. On guarded routes the
// session comes off the context; public pages consult the store directly so
// the header still knows who is logged in.
func baseContext(c *gin.Context, store session.Store, title string) gin.H {
	data := gin.H{
		"Title":   title,
		"Refresh": 0,
	}
	if s, ok := middleware.CurrentSession(c); ok {
		data["Session"] = s
	} else if s, ok := store.Current(c); ok {
		data["Session"] = s
	}
	return data
}

// sessionExpired is the one place upstream 401s are handled: clear the
// session, send the user to login, abandon the action. Reports whether err
// was that case.
func sessionExpired(c *gin.Context, store session.Store, err error) bool {
	if err == nil || !errors.Is(err, services.ErrUnauthorized) {
		return false
	}
	store.Logout(c)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
	return true
}

// flash carries the outcome of a redirect-after-POST mutation back to the
// page via query parameters.
func flash(c *gin.Context, data gin.H) gin.H {
	if msg := c.Query("success"); msg != "" {
		data["Success"] = msg
	}
	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}
	return data
}

func redirectWithSuccess(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, withQuery(path, "success", msg))
}

func redirectWithError(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, withQuery(path, "error", msg))
}

func withQuery(path, key, value string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + key + "=" + url.QueryEscape(value)
}

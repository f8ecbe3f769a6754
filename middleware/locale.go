package middleware

import (
	"net/http"
	"strings"

	"waitlist/auth"
	"waitlist/i18n"

	"github.com/gin-gonic/gin"
)

// PathHeader carries the raw request path on pass-through responses so
// not-found pages can recover the locale.
const PathHeader = "x-pathname"

// SessionLookup resolves the session on a request. A nil session without
// error means unauthenticated.
type SessionLookup func(r *http.Request) (*auth.Session, error)

// LocaleAuth enforces locale-prefixed URLs on page routes and gates the
// backoffice behind a session. API routes, tracked links, and asset paths
// pass through untouched.
func LocaleAuth(lookup SessionLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/trk/") || strings.Contains(path, ".") {
			c.Next()
			return
		}

		locale, ok := i18n.FromPath(path)
		if !ok {
			target := "/" + i18n.Detect(path, c.GetHeader("Accept-Language")) + path
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			c.Redirect(http.StatusTemporaryRedirect, target)
			c.Abort()
			return
		}

		// Backoffice sub-pages need a session. The backoffice root is the
		// login page and stays reachable.
		if strings.Contains(path, "/backoffice") && !strings.HasSuffix(path, "/backoffice") {
			session, err := lookup(c.Request)
			if err != nil || session == nil {
				// Lookup failures count as unauthenticated.
				c.Redirect(http.StatusTemporaryRedirect, "/"+locale+"/backoffice")
				c.Abort()
				return
			}
		}

		c.Header(PathHeader, path)
		c.Next()
	}
}

package handlers

import (
	"net/http"

	"waitlist/i18n"
	"waitlist/middleware"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the server-side pages. Locale-prefix enforcement and
// backoffice gating happen in the middleware before these run.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Signup(c *gin.Context) {
	h.render(c, "signup.html")
}

func (h *PageHandler) BackofficeLogin(c *gin.Context) {
	h.render(c, "backoffice_login.html")
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	h.render(c, "dashboard.html")
}

func (h *PageHandler) Waitlist(c *gin.Context) {
	h.render(c, "waitlist.html")
}

func (h *PageHandler) Members(c *gin.Context) {
	h.render(c, "members.html")
}

func (h *PageHandler) Denied(c *gin.Context) {
	h.render(c, "denied.html")
}

func (h *PageHandler) TrackableURLs(c *gin.Context) {
	h.render(c, "trackable_urls.html")
}

// NotFound recovers the locale from the x-pathname header the middleware
// attached and renders the 404 page in that locale.
func (h *PageHandler) NotFound(c *gin.Context) {
	path := c.Writer.Header().Get(middleware.PathHeader)
	locale, ok := i18n.FromPath(path)
	if !ok {
		locale = i18n.Default
	}
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Locale": locale})
}

func (h *PageHandler) render(c *gin.Context, template string) {
	locale := c.Param("locale")
	if !i18n.Supported(locale) {
		h.NotFound(c)
		return
	}
	c.HTML(http.StatusOK, template, gin.H{"Locale": locale})
}

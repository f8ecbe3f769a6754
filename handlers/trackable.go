package handlers

import (
	"errors"
	"net/http"
	"strings"

	"waitlist/services"

	"github.com/gin-gonic/gin"
)

type TrackableHandler struct {
	trackables *services.TrackableService
}

func NewTrackableHandler(trackables *services.TrackableService) *TrackableHandler {
	return &TrackableHandler{trackables: trackables}
}

type CreateTrackableRequest struct {
	Name string `json:"name"`
}

func (h *TrackableHandler) Create(c *gin.Context) {
	var req CreateTrackableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	url, err := h.trackables.Create(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrSlugExhausted) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate unique slug"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trackable URL"})
		return
	}

	c.JSON(http.StatusCreated, url)
}

func (h *TrackableHandler) List(c *gin.Context) {
	urls, err := h.trackables.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trackable URLs"})
		return
	}
	c.JSON(http.StatusOK, urls)
}

func (h *TrackableHandler) Delete(c *gin.Context) {
	if err := h.trackables.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trackable URL not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete trackable URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Track records a click on a campaign link and forwards the visitor to the
// signup page. The locale middleware finishes the redirect to /<locale>.
func (h *TrackableHandler) Track(c *gin.Context) {
	ip := clientIP(c.Request)
	userAgent := c.Request.UserAgent()

	_, err := h.trackables.RecordClick(c.Param("slug"), ip, userAgent)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.String(http.StatusNotFound, "Link not found")
			return
		}
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, "/")
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("x-forwarded-for"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return r.Header.Get("x-real-ip")
}

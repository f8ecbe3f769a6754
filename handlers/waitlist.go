package handlers

import (
	"errors"
	"net/http"

	"waitlist/services"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	members *services.MemberService
}

func NewWaitlistHandler(members *services.MemberService) *WaitlistHandler {
	return &WaitlistHandler{members: members}
}

type JoinRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (h *WaitlistHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and name are required"})
		return
	}

	email := services.SanitizeEmail(req.Email)
	name := services.SanitizeString(req.Name)

	if email == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and name are required"})
		return
	}
	if !services.IsValidEmail(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}
	if !services.IsValidName(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid name format"})
		return
	}

	member, err := h.members.Join(email, name)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have already signed up for our waitlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join waitlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Successfully joined the waitlist!",
		"entry":   member,
	})
}

func (h *WaitlistHandler) List(c *gin.Context) {
	entries, err := h.members.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch waitlist entries"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *WaitlistHandler) Stats(c *gin.Context) {
	stats, err := h.members.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch waitlist stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *WaitlistHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	member, err := h.members.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

package handlers

import (
	"net/http"

	"waitlist/auth"
	"waitlist/models"

	"github.com/gin-gonic/gin"
)

// AdminFinder looks up the backoffice account for credential checks.
type AdminFinder interface {
	FindByEmail(email string) (*models.Admin, error)
}

type AuthHandler struct {
	admins AdminFinder
	tokens *auth.Manager
}

func NewAuthHandler(admins AdminFinder, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{admins: admins, tokens: tokens}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	admin, err := h.admins.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !admin.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.tokens.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"name":  admin.Name,
		},
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.tokens.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

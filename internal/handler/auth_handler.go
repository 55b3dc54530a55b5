package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcasfest/fest-api/internal/middleware"
	"github.com/mcasfest/fest-api/internal/service"
	"github.com/mcasfest/fest-api/pkg/auth"
)

// AuthHandler handles login sessions for the admin and judge panels.
type AuthHandler struct {
	authService *service.AuthService
	jwtService  *auth.JWTService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{authService: authService, jwtService: jwtService}
}

// LoginRequest carries panel credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates and sets the session cookie
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.jwtService.SetAuthCookie(c.Writer, token)
	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout clears the session cookie
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.jwtService.ClearAuthCookie(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated account
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

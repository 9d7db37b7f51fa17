package handler

import (
	"log/slog"
	"net/http"

	"basegraph.app/helpdesk/internal/http/dto"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.authService.Register(ctx, req.User.Username, req.User.Password, req.User.PasswordConfirmation)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.authService.Login(ctx, req.User.Username, req.User.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Logout has nothing to revoke. Tokens are stateless and simply expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No session found"})
		return
	}

	session, err := h.authService.Refresh(c.Request.Context(), user)
	if err != nil {
		respondError(c, err, "Failed to refresh token")
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No session found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

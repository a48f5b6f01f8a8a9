package handlers

import (
	"errors"
	"net/http"

	"fitpulse/models"
	userService "fitpulse/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account registration, login and profile endpoints.
type UserHandler struct {
	UserService userService.UserService
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.Register(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, userService.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
			return
		}
		logger.Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var creds models.UserCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, userService.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeAuthTokenHandler handles POST /api/users/revoke.
func (h *UserHandler) RevokeAuthTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.UserService.RevokeToken(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to revoke token", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Token revoked"})
}

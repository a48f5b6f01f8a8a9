package handlers

import (
	"errors"
	"net/http"

	"fitpulse/models"
	userService "fitpulse/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, userService.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var updateReq models.User
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updatedUser, err := h.UserService.UpdateProfile(c.Request.Context(), userID, updateReq)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, updatedUser)
}

// DeleteUserHandler deletes the authenticated user's account.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.UserService.Delete(c.Request.Context(), userID); err != nil {
		logger.Error("Delete error", zap.String("id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

package handlers

import (
	"net/http"

	"fitpulse/models"
	ai "fitpulse/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the AI coach chat endpoints.
type AIHandler struct {
	Service ai.CoachService
}

// AIChatHandler handles POST /api/ai/chat.
func (h *AIHandler) AIChatHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.UserID = userID

	resp, err := h.Service.Chat(c.Request.Context(), req)
	if err != nil {
		logger.Error("AI chat failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Coach is unavailable right now"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AIResetHandler handles POST /api/ai/reset.
func (h *AIHandler) AIResetHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.Reset(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to reset AI context", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation reset"})
}

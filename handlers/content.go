package handlers

import (
	"errors"
	"net/http"
	"time"

	"fitpulse/middleware"
	"fitpulse/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the workout and nutrition catalogs and plan
// assignments.
type ContentHandler struct {
	Service content.ContentService
}

// WorkoutPlansHandler handles GET /api/content/workouts.
func (h *ContentHandler) WorkoutPlansHandler(c *gin.Context) {
	logger := getLogger(c)

	plans, err := h.Service.WorkoutPlans(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load workout plans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load workout plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// WorkoutPlanByIDHandler handles GET /api/content/workouts/:id.
func (h *ContentHandler) WorkoutPlanByIDHandler(c *gin.Context) {
	logger := getLogger(c)

	plan, err := h.Service.WorkoutPlanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Workout plan not found", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// NutritionPlansHandler handles GET /api/content/nutrition.
func (h *ContentHandler) NutritionPlansHandler(c *gin.Context) {
	logger := getLogger(c)

	plans, err := h.Service.NutritionPlans(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load nutrition plans", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load nutrition plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// NutritionPlanByIDHandler handles GET /api/content/nutrition/:id.
func (h *ContentHandler) NutritionPlanByIDHandler(c *gin.Context) {
	logger := getLogger(c)

	plan, err := h.Service.NutritionPlanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Nutrition plan not found", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Nutrition plan not found"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// AssignPlanHandler handles POST /api/content/assignments.
func (h *ContentHandler) AssignPlanHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		PlanID   string    `json:"planId" binding:"required"`
		ClientID string    `json:"clientId" binding:"required"`
		StartsAt time.Time `json:"startsAt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	assignment, err := h.Service.AssignPlan(c.Request.Context(), viewer, req.PlanID, req.ClientID, req.StartsAt)
	if err != nil {
		if errors.Is(err, content.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to assign plans to this client"})
			return
		}
		logger.Error("Failed to assign plan", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign plan"})
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// ClientPlansHandler handles GET /api/content/clients/:clientId/assignments.
func (h *ContentHandler) ClientPlansHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	assignments, err := h.Service.PlanAssignmentsForClient(c.Request.Context(), viewer, c.Param("clientId"))
	if err != nil {
		logger.Error("Failed to load plan assignments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assignments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

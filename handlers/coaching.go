package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"fitpulse/middleware"
	"fitpulse/models"
	"fitpulse/services/coaching"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CoachingHandler serves the roster and attachment endpoints.
type CoachingHandler struct {
	Service coaching.CoachingService
}

// VisibleClientsHandler handles GET /api/coaching/clients.
// Optional query params: status, search, coachUserId (roster of a specific
// professional), viewerRole (admin-only preview of another role's view).
func (h *CoachingHandler) VisibleClientsHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var filters models.RosterFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	// Admins may preview the roster as another role sees it.
	if previewRole := c.Query("viewerRole"); previewRole != "" && viewer.Role == models.RoleAdmin {
		viewer = models.Viewer{ID: viewer.ID, Role: models.ParseRole(previewRole)}
	}

	clients, err := h.Service.VisibleClients(c.Request.Context(), viewer, filters, c.Query("coachUserId"))
	if err != nil {
		logger.Error("Failed to resolve visible clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients, "count": len(clients)})
}

// ClientAttachmentsHandler handles GET /api/coaching/clients/:clientId/attachments.
func (h *CoachingHandler) ClientAttachmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	attachments, err := h.Service.ClientAttachments(c.Request.Context(), viewer, c.Param("clientId"))
	if err != nil {
		logger.Error("Failed to load attachments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attachments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attachments": attachments})
}

// RosterAttachmentsHandler handles GET /api/coaching/attachments.
// Returns the viewer's whole attachment view grouped by client, with the same
// optional status/search filters as the roster endpoint.
func (h *CoachingHandler) RosterAttachmentsHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var filters models.RosterFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	grouped, err := h.Service.RosterAttachments(c.Request.Context(), viewer, filters)
	if err != nil {
		logger.Error("Failed to load roster attachments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attachments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attachments": grouped, "clients": len(grouped)})
}

// UploadAttachmentHandler handles POST /api/coaching/clients/:clientId/attachments.
// Expects a multipart form with a "file" part, an optional "title" field and an
// optional "sensitive" flag for files that should be encrypted at rest.
func (h *CoachingHandler) UploadAttachmentHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to buffer upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	title := c.PostForm("title")
	if title == "" {
		title = file.Filename
	}
	sensitive := c.PostForm("sensitive") == "true"

	attachment, err := h.Service.UploadAttachment(c.Request.Context(), viewer, c.Param("clientId"), tmpPath, title, sensitive)
	if err != nil {
		if errors.Is(err, coaching.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to upload for this client"})
			return
		}
		logger.Error("Failed to upload attachment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload attachment"})
		return
	}
	c.JSON(http.StatusCreated, attachment)
}

// SetAttachmentVisibilityHandler handles PATCH /api/coaching/attachments/:id/visibility.
func (h *CoachingHandler) SetAttachmentVisibilityHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		VisibleToCoaches *bool `json:"visibleToCoaches" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	attachment, err := h.Service.SetAttachmentVisibility(c.Request.Context(), viewer, c.Param("id"), *req.VisibleToCoaches)
	if err != nil {
		switch {
		case errors.Is(err, coaching.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to change this attachment"})
		case errors.Is(err, coaching.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
		default:
			logger.Error("Failed to change attachment visibility", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change visibility"})
		}
		return
	}
	c.JSON(http.StatusOK, attachment)
}

// DeleteAttachmentHandler handles DELETE /api/coaching/attachments/:id.
func (h *CoachingHandler) DeleteAttachmentHandler(c *gin.Context) {
	logger := getLogger(c)

	viewer, ok := middleware.ViewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.DeleteAttachment(c.Request.Context(), viewer, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, coaching.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to delete this attachment"})
		case errors.Is(err, coaching.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
		default:
			logger.Error("Failed to delete attachment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attachment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attachment deleted"})
}

// AssignClientHandler handles PUT /api/admin/assignments/:professionalId/:clientId.
func (h *CoachingHandler) AssignClientHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.AssignClient(c.Request.Context(), c.Param("professionalId"), c.Param("clientId")); err != nil {
		logger.Error("Failed to assign client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client assigned"})
}

// UnassignClientHandler handles DELETE /api/admin/assignments/:professionalId/:clientId.
func (h *CoachingHandler) UnassignClientHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.UnassignClient(c.Request.Context(), c.Param("professionalId"), c.Param("clientId")); err != nil {
		logger.Error("Failed to unassign client", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client unassigned"})
}

// RosterHandler handles GET /api/admin/assignments/:professionalId.
func (h *CoachingHandler) RosterHandler(c *gin.Context) {
	logger := getLogger(c)

	assignment, err := h.Service.Roster(c.Request.Context(), c.Param("professionalId"))
	if err != nil {
		logger.Error("Failed to load roster", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roster"})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// ReplaceRosterHandler handles PUT /api/admin/assignments/:professionalId.
// The body's client list replaces the professional's roster wholesale.
func (h *CoachingHandler) ReplaceRosterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		ClientIDs []string `json:"clientIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	assignment, err := h.Service.ReplaceRoster(c.Request.Context(), c.Param("professionalId"), req.ClientIDs)
	if err != nil {
		logger.Error("Failed to replace roster", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace roster"})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

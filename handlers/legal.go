package handlers

import (
	"net/http"

	"fitpulse/models"
	"fitpulse/services/disclaimer"

	"github.com/gin-gonic/gin"
)

// LegalHandler serves the disclaimer gate and legal-text endpoints. Each user
// has one gate; the app opens a gate for a route, polls the prompting type and
// answers it with accept or dismiss.
type LegalHandler struct {
	Gates *disclaimer.Manager
}

// LegalGateHandler handles GET /api/legal/gate?path=/some/route.
// It starts the guard sequence for the route in the background and returns the
// required types together with the current acceptance snapshot. The app polls
// the status endpoint for the prompting type.
func (h *LegalHandler) LegalGateHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing path query param"})
		return
	}

	gate := h.Gates.ForUser(c.Request.Context(), userID)
	disclaimer.Start(gate, path)

	c.JSON(http.StatusOK, gin.H{
		"required":   disclaimer.RequiredTypes(path),
		"acceptance": gate.Acceptance(),
	})
}

// LegalStatusHandler handles GET /api/legal/status.
// Returns the type currently awaiting an answer, if any.
func (h *LegalHandler) LegalStatusHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	gate := h.Gates.ForUser(c.Request.Context(), userID)
	resp := gin.H{"acceptance": gate.Acceptance()}
	if dtype, prompting := gate.Current(); prompting {
		resp["prompt"] = dtype
		if section, ok := disclaimer.SectionFor(dtype); ok {
			resp["section"] = section
		}
	}
	c.JSON(http.StatusOK, resp)
}

// LegalAcceptHandler handles POST /api/legal/accept.
// Accepts the currently prompting type and advances the queue.
func (h *LegalHandler) LegalAcceptHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	gate := h.Gates.ForUser(c.Request.Context(), userID)
	gate.Accept(c.Request.Context())

	resp := gin.H{"acceptance": gate.Acceptance()}
	if dtype, prompting := gate.Current(); prompting {
		resp["prompt"] = dtype
	}
	c.JSON(http.StatusOK, resp)
}

// LegalDismissHandler handles POST /api/legal/dismiss.
// Dismisses the currently prompting type without recording acceptance.
func (h *LegalHandler) LegalDismissHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	gate := h.Gates.ForUser(c.Request.Context(), userID)
	gate.Dismiss()

	resp := gin.H{"acceptance": gate.Acceptance()}
	if dtype, prompting := gate.Current(); prompting {
		resp["prompt"] = dtype
	}
	c.JSON(http.StatusOK, resp)
}

// LegalSectionsHandler handles GET /api/legal/sections and
// GET /api/legal/sections/:type.
func (h *LegalHandler) LegalSectionsHandler(c *gin.Context) {
	if t := c.Param("type"); t != "" {
		section, ok := disclaimer.SectionFor(models.DisclaimerType(t))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown disclaimer type"})
			return
		}
		c.JSON(http.StatusOK, section)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"version": "v1.0",
		"data":    disclaimer.Sections(),
	})
}

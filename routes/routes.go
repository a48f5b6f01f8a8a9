package routes

import (
	"net/http"
	"time"

	"fitpulse/handlers"
	"fitpulse/middleware"
	"fitpulse/models"
	"fitpulse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.POST("/revoke", hb.RevokeAuthTokenHandler)
	}
}

// RegisterCoachingRoutes registers the roster and attachment endpoints.
func RegisterCoachingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/coaching")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/clients", hb.VisibleClientsHandler)
		api.GET("/clients/:clientId/attachments", hb.ClientAttachmentsHandler)
		api.GET("/attachments", hb.RosterAttachmentsHandler)
		api.POST("/clients/:clientId/attachments", hb.UploadAttachmentHandler)
		api.PATCH("/attachments/:id/visibility", hb.SetAttachmentVisibilityHandler)
		api.DELETE("/attachments/:id", hb.DeleteAttachmentHandler)
	}
}

// RegisterLegalRoutes registers the disclaimer gate and legal-text endpoints.
func RegisterLegalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/legal")
	{
		// Legal texts are public.
		api.GET("/sections", hb.LegalSectionsHandler)
		api.GET("/sections/:type", hb.LegalSectionsHandler)

		// Gate state is per-account.
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/gate", hb.LegalGateHandler)
		api.GET("/status", hb.LegalStatusHandler)
		api.POST("/accept", hb.LegalAcceptHandler)
		api.POST("/dismiss", hb.LegalDismissHandler)
	}
}

// RegisterContentRoutes registers the workout/nutrition catalog endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/workouts", hb.WorkoutPlansHandler)
		api.GET("/workouts/:id", hb.WorkoutPlanByIDHandler)
		api.GET("/nutrition", hb.NutritionPlansHandler)
		api.GET("/nutrition/:id", hb.NutritionPlanByIDHandler)
		api.GET("/clients/:clientId/assignments", hb.ClientPlansHandler)

		// Assigning plans is for coaches and admins.
		api.POST("/assignments",
			middleware.RequireRoles(models.RoleCoach, models.RoleAdmin),
			hb.AssignPlanHandler)
	}
}

// RegisterShopRoutes registers the product catalog and checkout endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shop")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/products", hb.ProductsHandler)
		api.POST("/checkout", hb.CheckoutHandler)
		api.POST("/orders/:id/confirm", hb.ConfirmOrderHandler)
		api.GET("/orders", hb.OrdersHandler)
	}
}

// RegisterAIRoutes registers AI coach endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/chat", hb.AIChatHandler)
		api.POST("/reset", hb.AIResetHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		adminGroup.GET("/assignments/:professionalId", hb.RosterHandler)
		adminGroup.PUT("/assignments/:professionalId", hb.ReplaceRosterHandler)
		adminGroup.PUT("/assignments/:professionalId/:clientId", hb.AssignClientHandler)
		adminGroup.DELETE("/assignments/:professionalId/:clientId", hb.UnassignClientHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		deps := utils.GetHealthStatus()
		status := "ok"
		if !deps.CheckedAt.IsZero() && !deps.Healthy() {
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"message": "Hi, I'm FitPulse",
			"deps":    deps,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterUserRoutes(r, hb)
	RegisterCoachingRoutes(r, hb)
	RegisterLegalRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

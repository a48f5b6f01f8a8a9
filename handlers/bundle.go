// File: fitpulse/handlers/bundle.go
package handlers

import (
	userRepoPkg "fitpulse/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Account endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc
	RevokeAuthTokenHandler  gin.HandlerFunc

	// Coaching endpoints
	VisibleClientsHandler          gin.HandlerFunc
	ClientAttachmentsHandler       gin.HandlerFunc
	RosterAttachmentsHandler       gin.HandlerFunc
	UploadAttachmentHandler        gin.HandlerFunc
	SetAttachmentVisibilityHandler gin.HandlerFunc
	DeleteAttachmentHandler        gin.HandlerFunc
	AssignClientHandler            gin.HandlerFunc
	UnassignClientHandler          gin.HandlerFunc
	RosterHandler                  gin.HandlerFunc
	ReplaceRosterHandler           gin.HandlerFunc

	// Legal / disclaimer endpoints
	LegalGateHandler     gin.HandlerFunc
	LegalAcceptHandler   gin.HandlerFunc
	LegalDismissHandler  gin.HandlerFunc
	LegalStatusHandler   gin.HandlerFunc
	LegalSectionsHandler gin.HandlerFunc

	// Content endpoints
	WorkoutPlansHandler      gin.HandlerFunc
	WorkoutPlanByIDHandler   gin.HandlerFunc
	NutritionPlansHandler    gin.HandlerFunc
	NutritionPlanByIDHandler gin.HandlerFunc
	AssignPlanHandler        gin.HandlerFunc
	ClientPlansHandler       gin.HandlerFunc

	// Shop endpoints
	ProductsHandler     gin.HandlerFunc
	CheckoutHandler     gin.HandlerFunc
	ConfirmOrderHandler gin.HandlerFunc
	OrdersHandler       gin.HandlerFunc

	// AI coach endpoints
	AIChatHandler  gin.HandlerFunc
	AIResetHandler gin.HandlerFunc
}

// File: fitpulse/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitpulse/config"
	"fitpulse/cron"
	"fitpulse/database"
	assignmentRepoPkg "fitpulse/database/repository/assignment"
	attachmentRepoPkg "fitpulse/database/repository/attachment"
	contentRepoPkg "fitpulse/database/repository/content"
	shopRepoPkg "fitpulse/database/repository/shop"
	userRepoPkg "fitpulse/database/repository/user"
	"fitpulse/handlers"
	"fitpulse/routes"
	"fitpulse/services/coaching"
	"fitpulse/services/content"
	"fitpulse/services/disclaimer"
	ai "fitpulse/services/intelligence"
	"fitpulse/services/shop"
	"fitpulse/services/tasks"
	"fitpulse/services/user"
	"fitpulse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(database.MongoClient, time.Minute)

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	assignmentRepo := assignmentRepoPkg.NewMongoAssignmentRepo()
	attachmentRepo := attachmentRepoPkg.NewMongoAttachmentRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()
	shopRepo := shopRepoPkg.NewMongoShopRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	coachingService := &coaching.DefaultCoachingService{
		UserRepo:       userRepo,
		AssignmentRepo: assignmentRepo,
		AttachmentRepo: attachmentRepo,
		Storage:        cloudinaryStorageService,
	}

	reminderQueue := tasks.NewReminderQueueClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisReminderQueueDB,
	)
	defer reminderQueue.Close()

	contentService := &content.DefaultContentService{
		Repo:           contentRepo,
		AssignmentRepo: assignmentRepo,
		ReminderQueue:  reminderQueue,
	}

	shopService := &shop.DefaultShopService{
		Repo: shopRepo,
	}

	gateManager := disclaimer.NewManager(
		disclaimer.NewRedisAcceptanceStore(utils.GetDisclaimerClient()),
	)

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextClient(), 30*time.Minute)
	aiService := ai.NewCoachService(
		ai.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		ctxStore,
		userRepo,
	)

	// handlers.
	userHandler := &handlers.UserHandler{UserService: userService}
	coachingHandler := &handlers.CoachingHandler{Service: coachingService}
	legalHandler := &handlers.LegalHandler{Gates: gateManager}
	contentHandler := &handlers.ContentHandler{Service: contentService}
	shopHandler := &handlers.ShopHandler{Service: shopService}
	aiHandler := &handlers.AIHandler{Service: aiService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Account endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetProfileHandler:       userHandler.GetProfileHandler,
		UpdateProfileHandler:    userHandler.UpdateProfileHandler,
		DeleteUserHandler:       userHandler.DeleteUserHandler,
		RevokeAuthTokenHandler:  userHandler.RevokeAuthTokenHandler,

		// Coaching endpoints.
		VisibleClientsHandler:          coachingHandler.VisibleClientsHandler,
		ClientAttachmentsHandler:       coachingHandler.ClientAttachmentsHandler,
		RosterAttachmentsHandler:       coachingHandler.RosterAttachmentsHandler,
		UploadAttachmentHandler:        coachingHandler.UploadAttachmentHandler,
		SetAttachmentVisibilityHandler: coachingHandler.SetAttachmentVisibilityHandler,
		DeleteAttachmentHandler:        coachingHandler.DeleteAttachmentHandler,
		AssignClientHandler:            coachingHandler.AssignClientHandler,
		UnassignClientHandler:          coachingHandler.UnassignClientHandler,
		RosterHandler:                  coachingHandler.RosterHandler,
		ReplaceRosterHandler:           coachingHandler.ReplaceRosterHandler,

		// Legal endpoints.
		LegalGateHandler:     legalHandler.LegalGateHandler,
		LegalAcceptHandler:   legalHandler.LegalAcceptHandler,
		LegalDismissHandler:  legalHandler.LegalDismissHandler,
		LegalStatusHandler:   legalHandler.LegalStatusHandler,
		LegalSectionsHandler: legalHandler.LegalSectionsHandler,

		// Content endpoints.
		WorkoutPlansHandler:      contentHandler.WorkoutPlansHandler,
		WorkoutPlanByIDHandler:   contentHandler.WorkoutPlanByIDHandler,
		NutritionPlansHandler:    contentHandler.NutritionPlansHandler,
		NutritionPlanByIDHandler: contentHandler.NutritionPlanByIDHandler,
		AssignPlanHandler:        contentHandler.AssignPlanHandler,
		ClientPlansHandler:       contentHandler.ClientPlansHandler,

		// Shop endpoints.
		ProductsHandler:     shopHandler.ProductsHandler,
		CheckoutHandler:     shopHandler.CheckoutHandler,
		ConfirmOrderHandler: shopHandler.ConfirmOrderHandler,
		OrdersHandler:       shopHandler.OrdersHandler,

		// AI coach endpoints.
		AIChatHandler:  aiHandler.AIChatHandler,
		AIResetHandler: aiHandler.AIResetHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background reminder worker.
	cron.InitReminderWorker()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

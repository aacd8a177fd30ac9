// File: chcrent/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chcrent/config"
	"chcrent/database"
	centerRepoPkg "chcrent/database/repository/center"
	equipmentRepoPkg "chcrent/database/repository/equipment"
	orderRepoPkg "chcrent/database/repository/order"
	userRepoPkg "chcrent/database/repository/user"
	"chcrent/handlers"
	"chcrent/middleware"
	"chcrent/routes"
	"chcrent/services/assistant"
	"chcrent/services/booking"
	"chcrent/services/notification"
	"chcrent/services/orders"
	"chcrent/services/user"
	"chcrent/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		// Avatar uploads are the only consumer; the rest of the service runs
		// without Cloudinary credentials.
		logger.Sugar().Warnf("main: cloudinary storage unavailable: %v", err)
		cloudinaryStorageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	centerRepo := centerRepoPkg.NewMongoCenterRepo()
	equipmentRepo := equipmentRepoPkg.NewMongoEquipmentRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:    userRepo,
		Centers: centerRepo,
		Storage: cloudinaryStorageService,
	}

	bookingService := &booking.DefaultBookingService{
		EquipmentRepo: equipmentRepo,
		OrderRepo:     orderRepo,
	}

	notificationService := &notification.FCMNotificationService{
		Users: userRepo,
	}

	orderTracker := &orders.Tracker{
		Stream:   orderRepo,
		Notifier: notificationService,
	}

	geminiClient, err := assistant.NewGeminiClient(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	assistantService := &assistant.DefaultAssistantService{
		Model:      geminiClient,
		Catalog:    equipmentRepo,
		Users:      userRepo,
		BookingSvc: bookingService,
		Cache:      utils.GetCatalogCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		UserHandler:      handlers.NewUserHandler(userService),
		CenterHandler:    handlers.NewCenterHandler(centerRepo),
		EquipmentHandler: handlers.NewEquipmentHandler(equipmentRepo, userRepo),
		BookingHandler:   handlers.NewBookingHandler(bookingService, userRepo),
		OrderHandler:     handlers.NewOrderHandler(orderRepo, orderTracker, userRepo),
		AssistantHandler: handlers.NewAssistantHandler(assistantService),
	}

	routes.RegisterRoutes(router, handlerBundle)

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

package routes

import (
	"net/http"
	"time"

	"chcrent/handlers"
	"chcrent/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and session endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.UserHandler.RegisterUserHandler)
		api.POST("/request-otp", hb.UserHandler.RequestLoginCodeHandler)
		api.POST("/verify-otp", hb.UserHandler.VerifyLoginCodeHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.UserHandler.GetProfileHandler)
		api.PATCH("/me", hb.UserHandler.UpdateProfileHandler)
		api.POST("/me/avatar", hb.UserHandler.UploadAvatarHandler)
		api.PUT("/me/fcm-token", hb.UserHandler.UpdateFCMTokenHandler)
		api.DELETE("/me/session", hb.UserHandler.LogoutHandler)
	}
}

// RegisterCenterRoutes registers the public center directory.
func RegisterCenterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/centers")
	{
		api.GET("", hb.CenterHandler.ListCentersHandler)
	}
}

// RegisterEquipmentRoutes registers catalog endpoints.
func RegisterEquipmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/equipment")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.EquipmentHandler.ListEquipmentHandler)
		api.GET("/:id", hb.EquipmentHandler.GetEquipmentHandler)
	}
}

// RegisterBookingRoutes sets up the endpoint for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.BookingHandler.CreateBookingHandler)
	}
}

// RegisterOrderRoutes registers order history and the live order stream.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.OrderHandler.ListOrdersHandler)
		api.GET("/stream", hb.OrderHandler.StreamOrdersHandler)
		api.GET("/:id", hb.OrderHandler.GetOrderHandler)
	}
}

// RegisterAssistantRoutes registers the conversational assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/greeting", hb.AssistantHandler.GreetingHandler)
		api.POST("/chat", hb.AssistantHandler.ChatHandler)
		api.POST("/stt", handlers.STTHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CHC Rent"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCenterRoutes(r, hb)
	RegisterEquipmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}

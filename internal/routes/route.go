package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bnyashwanth/event-ticketing-system/internal/container"
	"github.com/bnyashwanth/event-ticketing-system/internal/handlers"
	"github.com/bnyashwanth/event-ticketing-system/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	auth := middleware.AuthMiddleware(container.Config.JWTSecret, container.Logger)

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "event-ticketing-api",
			})
		})

		// public routes
		v1.POST("/auth/signup", handlers.Signup(container.UserService))
		v1.POST("/auth/login", handlers.Login(container.UserService))
	}

	eventRoutes := v1.Group("/events")
	{
		eventRoutes.POST("/", auth, handlers.CreateEventHandler(container.EventService))
		eventRoutes.GET("/my-events", auth, handlers.ListMyEvents(container.EventService))
		eventRoutes.GET("/:id", handlers.GetEventByID(container.EventService))
	}

	registrationRoutes := v1.Group("/registrations")
	{
		// Attendee-facing endpoints carry no auth: registering is open and the
		// ticket id is its own credential.
		registrationRoutes.POST("/:eventId", handlers.SubmitRegistration(container.RegistrationService))
		registrationRoutes.GET("/ticket/:ticketId", handlers.GetTicket(container.RegistrationService))

		registrationRoutes.GET("/event/:eventId", auth, handlers.ListEventRegistrations(container.RegistrationService))
		registrationRoutes.PUT("/:id/status", auth, handlers.UpdateRegistrationStatus(container.RegistrationService))
	}

	return r
}

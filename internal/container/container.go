package container

import (
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bnyashwanth/event-ticketing-system/internal/config"
	"github.com/bnyashwanth/event-ticketing-system/internal/models"
	"github.com/bnyashwanth/event-ticketing-system/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client

	UserService         *services.UserService
	EventService        *services.EventService
	RegistrationService *services.RegistrationService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	// Initialize repositories
	repo := models.MongodbNewRepo(mongoDBClient)

	userService := services.NewUserService(repo, cfg.JWTSecret)
	eventService := services.NewEventService(repo)
	registrationService := services.NewRegistrationService(repo, repo)

	return &Container{
		Logger:              logger,
		Config:              cfg,
		MongoDBClient:       mongoDBClient,
		UserService:         userService,
		EventService:        eventService,
		RegistrationService: registrationService,
	}
}

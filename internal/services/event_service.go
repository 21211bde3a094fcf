package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bnyashwanth/event-ticketing-system/internal/models"
)

type EventService struct {
	eventRepo models.EventRepo
}

func NewEventService(eventRepo models.EventRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// CreateEvent persists a new event for the organizer. Ticket limit and
// approval mode are validated here and immutable afterwards.
func (es *EventService) CreateEvent(ctx context.Context, event *models.Event, organizerID primitive.ObjectID) (*models.Event, error) {
	if organizerID.IsZero() {
		return nil, fmt.Errorf("%w: invalid organizer ID", models.ErrValidation)
	}
	event.Organizer = organizerID

	if err := models.Validate.Struct(event); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	return es.eventRepo.CreateEvent(ctx, event)
}

func (es *EventService) GetEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: invalid event ID", models.ErrValidation)
	}

	return es.eventRepo.GetEventByID(ctx, id)
}

func (es *EventService) ListOrganizerEvents(ctx context.Context, organizerID primitive.ObjectID, offset, limit int) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid offset or limit", models.ErrValidation)
	}
	if organizerID.IsZero() {
		return nil, 0, fmt.Errorf("%w: invalid organizer ID", models.ErrValidation)
	}

	return es.eventRepo.ListEventsByOrganizer(ctx, organizerID, offset, limit)
}

package handlers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bnyashwanth/event-ticketing-system/internal/middleware"
	"github.com/bnyashwanth/event-ticketing-system/internal/models"
	"github.com/bnyashwanth/event-ticketing-system/internal/services"
)

const testSecret = "handler-test-secret"

// fakeStore is an in-memory stand-in for the Mongo repos, implementing
// models.EventRepo and models.RegistrationRepo.
type fakeStore struct {
	mu            sync.Mutex
	events        map[primitive.ObjectID]*models.Event
	registrations []*models.Registration
}

func newFakeStore() *fakeStore {
	return &fakeStore{events: make(map[primitive.ObjectID]*models.Event)}
}

func (f *fakeStore) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := event.BeforeCreate(); err != nil {
		return nil, err
	}
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	cp := *event
	f.events[event.ID] = &cp
	return event, nil
}

func (f *fakeStore) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *event
	return &cp, nil
}

func (f *fakeStore) ListEventsByOrganizer(ctx context.Context, organizer primitive.ObjectID, offset, limit int) ([]*models.Event, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Event
	for _, event := range f.events {
		if event.Organizer == organizer {
			cp := *event
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (f *fakeStore) CreateRegistration(ctx context.Context, registration *models.Registration) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := registration.BeforeCreate(); err != nil {
		return nil, err
	}
	registration.CreatedAt = time.Now()
	registration.UpdatedAt = registration.CreatedAt
	cp := *registration
	f.registrations = append(f.registrations, &cp)
	return registration, nil
}

func (f *fakeStore) GetRegistrationByID(ctx context.Context, id primitive.ObjectID) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, registration := range f.registrations {
		if registration.ID == id {
			cp := *registration
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) GetRegistrationByTicketID(ctx context.Context, ticketID string) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, registration := range f.registrations {
		if registration.TicketID == ticketID && ticketID != "" {
			cp := *registration
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeStore) ListRegistrationsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Registration
	for i := len(f.registrations) - 1; i >= 0; i-- {
		if f.registrations[i].EventID == eventID {
			cp := *f.registrations[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) CountApprovedRegistrations(ctx context.Context, eventID primitive.ObjectID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, registration := range f.registrations {
		if registration.EventID == eventID && registration.Status == models.StatusApproved {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) UpdateRegistrationStatus(ctx context.Context, id primitive.ObjectID, status models.RegistrationStatus, ticketID string) (*models.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, registration := range f.registrations {
		if registration.ID == id {
			registration.Status = status
			registration.UpdatedAt = time.Now()
			if ticketID != "" {
				registration.TicketID = ticketID
			}
			cp := *registration
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

// newTestRouter wires the real services and middleware over the fake store,
// mirroring the production route table.
func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	es := services.NewEventService(store)
	rs := services.NewRegistrationService(store, store)
	auth := middleware.AuthMiddleware(testSecret, logger)

	r := gin.New()
	v1 := r.Group("/api/v1")

	eventRoutes := v1.Group("/events")
	eventRoutes.POST("/", auth, CreateEventHandler(es))
	eventRoutes.GET("/my-events", auth, ListMyEvents(es))
	eventRoutes.GET("/:id", GetEventByID(es))

	registrationRoutes := v1.Group("/registrations")
	registrationRoutes.POST("/:eventId", SubmitRegistration(rs))
	registrationRoutes.GET("/ticket/:ticketId", GetTicket(rs))
	registrationRoutes.GET("/event/:eventId", auth, ListEventRegistrations(rs))
	registrationRoutes.PUT("/:id/status", auth, UpdateRegistrationStatus(rs))

	return r
}

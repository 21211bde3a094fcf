package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bnyashwanth/event-ticketing-system/internal/models"
)

// In-memory repo fakes backing the service tests.

type memEventRepo struct {
	mu     sync.Mutex
	events map[primitive.ObjectID]*models.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{events: make(map[primitive.ObjectID]*models.Event)}
}

func (m *memEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := event.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	cp := *event
	m.events[event.ID] = &cp
	return event, nil
}

func (m *memEventRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *event
	return &cp, nil
}

func (m *memEventRepo) ListEventsByOrganizer(ctx context.Context, organizer primitive.ObjectID, offset, limit int) ([]*models.Event, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*models.Event
	for _, event := range m.events {
		if event.Organizer == organizer {
			cp := *event
			all = append(all, &cp)
		}
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

type memRegistrationRepo struct {
	mu            sync.Mutex
	registrations []*models.Registration
}

func newMemRegistrationRepo() *memRegistrationRepo {
	return &memRegistrationRepo{}
}

func (m *memRegistrationRepo) CreateRegistration(ctx context.Context, registration *models.Registration) (*models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := registration.BeforeCreate(); err != nil {
		return nil, err
	}
	now := time.Now()
	registration.CreatedAt = now
	registration.UpdatedAt = now
	cp := *registration
	m.registrations = append(m.registrations, &cp)
	return registration, nil
}

func (m *memRegistrationRepo) GetRegistrationByID(ctx context.Context, id primitive.ObjectID) (*models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, registration := range m.registrations {
		if registration.ID == id {
			cp := *registration
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memRegistrationRepo) GetRegistrationByTicketID(ctx context.Context, ticketID string) (*models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, registration := range m.registrations {
		if registration.TicketID == ticketID && ticketID != "" {
			cp := *registration
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memRegistrationRepo) ListRegistrationsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Registration
	// newest first
	for i := len(m.registrations) - 1; i >= 0; i-- {
		if m.registrations[i].EventID == eventID {
			cp := *m.registrations[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memRegistrationRepo) CountApprovedRegistrations(ctx context.Context, eventID primitive.ObjectID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, registration := range m.registrations {
		if registration.EventID == eventID && registration.Status == models.StatusApproved {
			count++
		}
	}
	return count, nil
}

func (m *memRegistrationRepo) UpdateRegistrationStatus(ctx context.Context, id primitive.ObjectID, status models.RegistrationStatus, ticketID string) (*models.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, registration := range m.registrations {
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

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (m *memUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := user.BeforeCreate(); err != nil {
		return nil, err
	}
	cp := *user
	m.users[user.Email] = &cp
	return user, nil
}

func (m *memUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *memUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ID == id {
			cp := *user
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

package services

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bnyashwanth/event-ticketing-system/internal/helpers"
	"github.com/bnyashwanth/event-ticketing-system/internal/models"
)

// RegistrationService owns the registration lifecycle: capacity-checked
// admission, approval-mode branching, organizer status transitions, and
// ticket issuance/lookup.
type RegistrationService struct {
	registrationRepo models.RegistrationRepo
	eventRepo        models.EventRepo

	// admissions serializes the count-check-and-insert of SubmitRegistration
	// per event, so two near-simultaneous submissions against the same event
	// cannot both pass the capacity check one below the limit. In-process
	// guarantee only; a multi-instance deployment would need the check moved
	// into a transactional conditional insert.
	mu         sync.Mutex
	admissions map[primitive.ObjectID]*sync.Mutex
}

func NewRegistrationService(registrationRepo models.RegistrationRepo, eventRepo models.EventRepo) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		admissions:       make(map[primitive.ObjectID]*sync.Mutex),
	}
}

func (rs *RegistrationService) admissionLock(eventID primitive.ObjectID) *sync.Mutex {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	lock, ok := rs.admissions[eventID]
	if !ok {
		lock = &sync.Mutex{}
		rs.admissions[eventID] = lock
	}
	return lock
}

// SubmitRegistration admits a new registration for an event. The capacity
// check counts only currently-Approved registrations and happens exactly once,
// here: a Pending registration does not consume capacity, and no re-check is
// performed when it is later approved manually.
func (rs *RegistrationService) SubmitRegistration(ctx context.Context, eventID primitive.ObjectID, userName, userEmail string) (*models.Registration, error) {
	registration := &models.Registration{
		EventID:   eventID,
		UserName:  userName,
		UserEmail: userEmail,
	}
	if err := models.Validate.Struct(registration); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	event, err := rs.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	lock := rs.admissionLock(eventID)
	lock.Lock()
	defer lock.Unlock()

	approved, err := rs.registrationRepo.CountApprovedRegistrations(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if approved >= event.TicketLimit {
		return nil, models.ErrCapacityExceeded
	}

	registration.Status = models.StatusPending
	if event.ApprovalMode == models.ApprovalAutomatic {
		registration.Status = models.StatusApproved
		registration.TicketID = helpers.IssueTicketID()
	}

	return rs.registrationRepo.CreateRegistration(ctx, registration)
}

// ListEventRegistrations returns an event's registrations, newest first.
// Only the owning organizer may list them.
func (rs *RegistrationService) ListEventRegistrations(ctx context.Context, eventID, requesterID primitive.ObjectID) ([]*models.Registration, error) {
	event, err := rs.eventRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Organizer != requesterID {
		return nil, models.ErrUnauthorized
	}

	return rs.registrationRepo.ListRegistrationsByEvent(ctx, eventID)
}

// SetRegistrationStatus applies an organizer decision. The first transition to
// Approved issues a ticket identifier; once issued it is never regenerated or
// cleared, whatever the status moves to afterwards. Capacity is deliberately
// not re-checked on manual approval: organizers are trusted to self-limit.
func (rs *RegistrationService) SetRegistrationStatus(ctx context.Context, registrationID primitive.ObjectID, newStatus models.RegistrationStatus, requesterID primitive.ObjectID) (*models.Registration, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: invalid status %q", models.ErrValidation, newStatus)
	}

	registration, err := rs.registrationRepo.GetRegistrationByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	event, err := rs.eventRepo.GetEventByID(ctx, registration.EventID)
	if err != nil {
		return nil, err
	}
	if event.Organizer != requesterID {
		return nil, models.ErrUnauthorized
	}

	ticketID := ""
	if newStatus == models.StatusApproved && registration.TicketID == "" {
		ticketID = helpers.IssueTicketID()
	}

	return rs.registrationRepo.UpdateRegistrationStatus(ctx, registrationID, newStatus, ticketID)
}

// GetTicket resolves a ticket identifier to its registration and the display
// fields of the owning event. The ticket id is the bearer credential; no
// authentication is required, and a ticket stays resolvable even if the
// registration was later rejected.
func (rs *RegistrationService) GetTicket(ctx context.Context, ticketID string) (*models.TicketDetails, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("%w: ticket ID cannot be empty", models.ErrValidation)
	}

	registration, err := rs.registrationRepo.GetRegistrationByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	event, err := rs.eventRepo.GetEventByID(ctx, registration.EventID)
	if err != nil {
		return nil, err
	}

	return &models.TicketDetails{
		Registration: registration,
		EventTitle:   event.Title,
		EventDate:    event.Date,
		EventVenue:   event.Venue,
	}, nil
}

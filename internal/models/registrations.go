package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "Pending"
	StatusApproved RegistrationStatus = "Approved"
	StatusRejected RegistrationStatus = "Rejected"
)

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Registration is an attendee's request to attend an Event. TicketID is
// assigned the first time the registration reaches Approved and is never
// regenerated or cleared afterwards, even if the status moves away from
// Approved again.
type Registration struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   primitive.ObjectID `bson:"event" json:"event"`
	UserName  string             `bson:"user_name" json:"user_name" validate:"required"`
	UserEmail string             `bson:"user_email" json:"user_email" validate:"required,email"`
	Status    RegistrationStatus `bson:"status" json:"status"`
	TicketID  string             `bson:"ticket_id,omitempty" json:"ticket_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (r *Registration) BeforeCreate() error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	return nil
}

// TicketDetails is the payload of the public ticket lookup: the registration
// together with the display fields of its event.
type TicketDetails struct {
	Registration *Registration `json:"registration"`
	EventTitle   string        `json:"event_title"`
	EventDate    time.Time     `json:"event_date"`
	EventVenue   string        `json:"event_venue"`
}

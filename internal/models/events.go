package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApprovalMode string

const (
	ApprovalAutomatic ApprovalMode = "Automatic"
	ApprovalManual    ApprovalMode = "Manual"
)

// Event is an organizer-owned activity with a ticket cap and an approval
// policy. Capacity and approval mode are fixed at creation time.
type Event struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Organizer    primitive.ObjectID `bson:"organizer" json:"organizer"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Description  string             `bson:"description" json:"description" validate:"required"`
	Date         time.Time          `bson:"date" json:"date" validate:"required"`
	Venue        string             `bson:"venue" json:"venue" validate:"required"`
	TicketLimit  int                `bson:"ticket_limit" json:"ticket_limit" validate:"required,gte=1"`
	ApprovalMode ApprovalMode       `bson:"approval_mode" json:"approval_mode" validate:"required,oneof=Automatic Manual"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (e *Event) BeforeCreate() error {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	return nil
}

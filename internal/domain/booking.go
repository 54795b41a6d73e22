package domain

import (
	"context"
	"time"
)

// Booking represents a seat booked for an event by an email address.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBooking returns a new Booking. ID is set by the repository on create.
func NewBooking(eventID, email string, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		EventID:   eventID,
		Email:     email,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// BookingResult is the outcome of a booking admission. EmailSent reports
// whether the confirmation email went out; the booking itself is durable
// either way.
type BookingResult struct {
	Booking   *Booking `json:"booking"`
	EmailSent bool     `json:"email_sent"`
}

// BookingRepository defines storage operations for bookings.
// The (event_id, email) pair is unique; Create returns ErrAlreadyBooked
// when the constraint is violated.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByEventAndEmail(ctx context.Context, eventID, email string) (*Booking, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
}

// BookingService defines the booking admission logic.
type BookingService interface {
	// CreateBooking books a seat for email on the given event. A failed
	// confirmation email does not fail the booking; it is reported through
	// BookingResult.EmailSent.
	CreateBooking(ctx context.Context, eventID, email string) (*BookingResult, error)
}

package domain

import (
	"context"
	"time"
)

// Event modes. Mode is validated against these values on create.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Event represents a listed event.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Overview    string    `json:"overview"`
	Image       string    `json:"image"`
	Venue       string    `json:"venue"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Mode        string    `json:"mode"`
	Audience    string    `json:"audience"`
	Organizer   string    `json:"organizer"`
	Agenda      []string  `json:"agenda"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventInput holds the raw, untrusted fields of an event creation request.
// services.PrepareEvent turns it into a canonical Event or rejects it.
type EventInput struct {
	Title       string
	Slug        string
	Description string
	Overview    string
	Image       string
	Venue       string
	Location    string
	Date        string
	Time        string
	Mode        string
	Audience    string
	Organizer   string
	Agenda      []string
	Tags        []string
}

// EventRepository defines the interface for event storage.
// Slug uniqueness is enforced server-side; Create returns ErrDuplicateSlug
// on a collision.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// List returns events ordered by created_at descending, plus the total count.
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	// ListSimilar returns events other than excludeID whose tags overlap the
	// given set, newest first, capped at limit.
	ListSimilar(ctx context.Context, excludeID string, tags []string, limit int) ([]*Event, error)
}

// EventService defines the business logic for events.
type EventService interface {
	CreateEvent(ctx context.Context, in EventInput) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	// GetSimilarEvents returns up to three events sharing at least one tag with
	// the event identified by slug. An unknown slug yields an empty list, not
	// an error.
	GetSimilarEvents(ctx context.Context, slug string) ([]*Event, error)
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"devevent/internal/domain"
)

type mockBookingRepository struct {
	bookings  map[string]*domain.Booking // key: eventID + ":" + email
	createErr error

	created []*domain.Booking
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	booking.ID = "bk-created"
	m.created = append(m.created, booking)
	return nil
}

func (m *mockBookingRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	if b, ok := m.bookings[eventID+":"+email]; ok {
		return b, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockBookingRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	return len(m.created), nil
}

type mockEmailService struct {
	err  error
	sent []*domain.BookingConfirmationEmailData
}

func (m *mockEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}

func bookingFixtures() (*mockBookingRepository, *mockEventRepository, *mockEmailService) {
	event := testEvent("e1", "go-conf", []string{"go"})
	event.Title = "Go Conf"
	event.Date = "2025-11-15"
	event.Time = "09:00"
	event.Venue = "Moscone Center"
	event.Location = "San Francisco, CA"
	event.Mode = "offline"
	bookingRepo := &mockBookingRepository{bookings: map[string]*domain.Booking{}}
	eventRepo := &mockEventRepository{
		eventsByID:   map[string]*domain.Event{"e1": event},
		eventsBySlug: map[string]*domain.Event{"go-conf": event},
	}
	return bookingRepo, eventRepo, &mockEmailService{}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	ctx := context.Background()
	bookingRepo, eventRepo, emails := bookingFixtures()
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	result, err := svc.CreateBooking(ctx, "e1", "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.EmailSent {
		t.Errorf("expected email_sent true")
	}
	if result.Booking.ID != "bk-created" {
		t.Errorf("expected repository-assigned ID, got %q", result.Booking.ID)
	}
	if len(emails.sent) != 1 {
		t.Fatalf("expected 1 confirmation email, got %d", len(emails.sent))
	}
	if emails.sent[0].EventTitle != "Go Conf" {
		t.Errorf("confirmation email carries wrong event: %q", emails.sent[0].EventTitle)
	}
}

func TestBookingService_CreateBooking_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	bookingRepo, eventRepo, emails := bookingFixtures()
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	for _, email := range []string{"", "not-an-email", "a@b", "a b@c.com", "@example.com"} {
		if _, err := svc.CreateBooking(ctx, "e1", email); !errors.Is(err, domain.ErrInvalidEmail) {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
	if len(bookingRepo.created) != 0 {
		t.Errorf("no booking should be created for invalid email")
	}
}

func TestBookingService_CreateBooking_AlreadyBooked(t *testing.T) {
	ctx := context.Background()
	bookingRepo, eventRepo, emails := bookingFixtures()
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	if _, err := svc.CreateBooking(ctx, "e1", "a@b.com"); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	bookingRepo.bookings["e1:a@b.com"] = bookingRepo.created[0]

	_, err := svc.CreateBooking(ctx, "e1", "a@b.com")
	if !errors.Is(err, domain.ErrAlreadyBooked) {
		t.Fatalf("expected ErrAlreadyBooked, got %v", err)
	}
	if len(bookingRepo.created) != 1 {
		t.Errorf("expected exactly one booking record, got %d", len(bookingRepo.created))
	}
}

func TestBookingService_CreateBooking_ConstraintViolationMapsToAlreadyBooked(t *testing.T) {
	// Two concurrent requests can both pass the pre-check; the unique index
	// decides, and its violation reads the same as the pre-check failure.
	ctx := context.Background()
	bookingRepo, eventRepo, emails := bookingFixtures()
	bookingRepo.createErr = domain.ErrAlreadyBooked
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	_, err := svc.CreateBooking(ctx, "e1", "a@b.com")
	if !errors.Is(err, domain.ErrAlreadyBooked) {
		t.Fatalf("expected ErrAlreadyBooked, got %v", err)
	}
}

func TestBookingService_CreateBooking_UnknownEvent(t *testing.T) {
	ctx := context.Background()
	bookingRepo, eventRepo, emails := bookingFixtures()
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	_, err := svc.CreateBooking(ctx, "missing", "a@b.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(bookingRepo.created) != 0 {
		t.Errorf("no booking should be created for an unknown event")
	}
}

func TestBookingService_CreateBooking_EmailFailureDoesNotFailBooking(t *testing.T) {
	ctx := context.Background()
	bookingRepo, eventRepo, emails := bookingFixtures()
	emails.err = errors.New("smtp exploded")
	svc := NewBookingService(bookingRepo, eventRepo, emails, time.Second)

	result, err := svc.CreateBooking(ctx, "e1", "a@b.com")
	if err != nil {
		t.Fatalf("booking must succeed despite email failure, got %v", err)
	}
	if result.EmailSent {
		t.Errorf("expected email_sent false")
	}
	if len(bookingRepo.created) != 1 {
		t.Errorf("expected exactly one booking record, got %d", len(bookingRepo.created))
	}
}

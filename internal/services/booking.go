package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"devevent/internal/domain"
)

// emailRegex matches a standard address: local part, @, dotted domain with a
// TLD of at least two characters.
var emailRegex = regexp.MustCompile(`(?i)^[\w.-]+@([\w-]+\.)+[\w-]{2,}$`)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService with the given repositories and
// email service.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		contextTimeout: timeout,
	}
}

// CreateBooking admits one booking per (event, email) pair. The confirmation
// email is best-effort: the booking stays committed when sending fails and
// the failure is reported only through BookingResult.EmailSent.
func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.BookingResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return nil, domain.ErrInvalidEmail
	}

	// Optimistic pre-check; the unique index on (event_id, email) remains the
	// authoritative tie-breaker under concurrent requests.
	if _, err := s.bookingRepo.GetByEventAndEmail(ctx, eventID, email); err == nil {
		return nil, domain.ErrAlreadyBooked
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := time.Now()
	booking := domain.NewBooking(event.ID, email, now, now)
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrAlreadyBooked) {
			return nil, domain.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	emailSent := false
	data := &domain.BookingConfirmationEmailData{
		Email:         email,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventTime:     event.Time,
		EventVenue:    event.Venue,
		EventLocation: event.Location,
		EventMode:     event.Mode,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		log.Printf("[BOOKING] Confirmation email to %s failed: %v", email, err)
	} else {
		emailSent = true
	}

	return &domain.BookingResult{Booking: booking, EmailSent: emailSent}, nil
}

package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateSlug = errors.New("slug already in use")
	ErrAlreadyBooked = errors.New("event already booked for this email")
	ErrInvalidDate   = errors.New("invalid date format")
	ErrInvalidTime   = errors.New("time must be in HH:MM 24-hour format")
	ErrInvalidMode   = errors.New("mode must be online, offline or hybrid")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// MissingFieldError reports the first required field found empty during
// event preparation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required and cannot be empty", e.Field)
}

package service

import "errors"

// Business-rule failures surfaced to the caller. Anything else returned by a
// service is an infrastructure fault and maps to a generic server error.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrEventNotFound       = errors.New("event not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUnauthorized        = errors.New("caller is not the event organizer")
	ErrDuplicateRequest    = errors.New("duplicate booking detected")
	ErrEventUnavailable    = errors.New("event is not available")
	ErrEventExpired        = errors.New("cannot book past events")
	ErrInsufficientTickets = errors.New("not enough tickets available")
	ErrCapacityBelowDemand = errors.New("cannot reduce tickets below already booked count")
	ErrEmailTaken          = errors.New("email already exists")
)

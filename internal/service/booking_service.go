package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bhanu75/Event-booking/internal/clock"
	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/notify"
	"github.com/bhanu75/Event-booking/internal/repository"
	"github.com/google/uuid"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID, eventID string, ticketCount uint, idempotencyKey string) (*models.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	events   repository.EventRepository
	users    repository.UserRepository
	locks    *EventLocks
	clock    clock.Clock
	notifier Notifier
}

func NewBookingService(
	bookings repository.BookingRepository,
	events repository.EventRepository,
	users repository.UserRepository,
	locks *EventLocks,
	clk clock.Clock,
	notifier Notifier,
) BookingService {
	return &bookingService{
		bookings: bookings,
		events:   events,
		users:    users,
		locks:    locks,
		clock:    clk,
		notifier: notifier,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, eventID string, ticketCount uint, idempotencyKey string) (*models.Booking, error) {
	if ticketCount < 1 {
		return nil, fmt.Errorf("%w: ticket count must be at least 1", ErrInvalidInput)
	}
	if idempotencyKey == "" {
		return nil, fmt.Errorf("%w: idempotency key is required", ErrInvalidInput)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Reject unknown events before a lock entry is allocated for them.
	if _, err := s.events.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	// The check-and-decrement sequence serializes per event; bookings against
	// different events proceed independently.
	unlock := s.locks.Lock(eventID)
	booking, event, err := s.createLocked(ctx, userID, eventID, ticketCount, idempotencyKey)
	unlock()
	if err != nil {
		return nil, err
	}

	s.notifier.Enqueue(notify.Job{
		ID:          uuid.NewString(),
		Kind:        notify.KindBookingConfirmation,
		UserName:    user.Name,
		UserEmail:   user.Email,
		TicketCount: ticketCount,
		EventTitle:  event.Title,
		EventDate:   event.StartTime,
	})

	log.Printf("[BookingService] booking %s created: event=%s tickets=%d", booking.ID, eventID, ticketCount)
	return booking, nil
}

func (s *bookingService) createLocked(ctx context.Context, userID, eventID string, ticketCount uint, idempotencyKey string) (*models.Booking, *models.Event, error) {
	_, err := s.bookings.FindByIdempotencyKey(ctx, idempotencyKey)
	if err == nil {
		return nil, nil, ErrDuplicateRequest
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, nil, fmt.Errorf("check idempotency key: %w", err)
	}

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("find event: %w", err)
	}
	if event.Status != models.EventActive {
		return nil, nil, ErrEventUnavailable
	}
	if event.StartTime.Before(s.clock.Now()) {
		return nil, nil, ErrEventExpired
	}
	if ticketCount > event.AvailableTickets {
		return nil, nil, ErrInsufficientTickets
	}

	event.AvailableTickets -= ticketCount
	event.UpdatedAt = s.clock.Now()
	if err := s.events.Save(ctx, event); err != nil {
		return nil, nil, fmt.Errorf("decrement inventory: %w", err)
	}

	booking := &models.Booking{
		ID:             uuid.NewString(),
		UserID:         userID,
		EventID:        eventID,
		TicketCount:    ticketCount,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      s.clock.Now(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		// Restore the decrement so inventory stays exactly accounted for.
		event.AvailableTickets += ticketCount
		if saveErr := s.events.Save(ctx, event); saveErr != nil {
			log.Printf("[BookingService] failed to restore inventory for event %s: %v", eventID, saveErr)
		}
		// The store's key uniqueness catches a concurrent booking that took
		// the same key under a different event's lock.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, nil, ErrDuplicateRequest
		}
		return nil, nil, fmt.Errorf("create booking: %w", err)
	}

	return booking, event, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/repository"
)

// BookingWithEvent is a booking joined with its event for display. Event is
// nil when the event has been hard-deleted out from under the booking, which
// cannot happen through the engine but may in a shared durable store.
type BookingWithEvent struct {
	Booking models.Booking
	Event   *models.Event
}

type BookingWithUser struct {
	Booking models.Booking
	User    *models.User
}

type EventSales struct {
	Event       models.Event
	TicketsSold uint
	Revenue     float64
}

type OrganizerReport struct {
	Events      []EventSales
	TicketsSold uint
	Revenue     float64
}

// QueryService exposes the read-oriented projections. Reads run without the
// per-event locks and may observe state before or after a concurrent write.
type QueryService interface {
	GetMyBookings(ctx context.Context, userID string) ([]BookingWithEvent, error)
	GetEventBookings(ctx context.Context, eventID, organizerID string) ([]BookingWithUser, error)
	OrganizerSummary(ctx context.Context, organizerID string) (*OrganizerReport, error)
}

type queryService struct {
	bookings repository.BookingRepository
	events   repository.EventRepository
	users    repository.UserRepository
}

func NewQueryService(
	bookings repository.BookingRepository,
	events repository.EventRepository,
	users repository.UserRepository,
) QueryService {
	return &queryService{bookings: bookings, events: events, users: users}
}

func (s *queryService) GetMyBookings(ctx context.Context, userID string) ([]BookingWithEvent, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]BookingWithEvent, 0, len(bookings))
	for _, b := range bookings {
		event, err := s.events.FindByID(ctx, b.EventID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("find event: %w", err)
		}
		out = append(out, BookingWithEvent{Booking: b, Event: event})
	}
	return out, nil
}

func (s *queryService) GetEventBookings(ctx context.Context, eventID, organizerID string) ([]BookingWithUser, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, ErrUnauthorized
	}

	bookings, err := s.bookings.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]BookingWithUser, 0, len(bookings))
	for _, b := range bookings {
		user, err := s.users.FindByID(ctx, b.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		out = append(out, BookingWithUser{Booking: b, User: user})
	}
	return out, nil
}

// OrganizerSummary aggregates sales across an organizer's events on every
// read; nothing is cached.
func (s *queryService) OrganizerSummary(ctx context.Context, organizerID string) (*OrganizerReport, error) {
	events, err := s.events.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	report := &OrganizerReport{Events: make([]EventSales, 0, len(events))}
	for _, e := range events {
		bookings, err := s.bookings.ListByEvent(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("list bookings: %w", err)
		}

		var sold uint
		for _, b := range bookings {
			sold += b.TicketCount
		}
		revenue := float64(sold) * e.Price

		report.Events = append(report.Events, EventSales{Event: e, TicketsSold: sold, Revenue: revenue})
		report.TicketsSold += sold
		report.Revenue += revenue
	}
	return report, nil
}

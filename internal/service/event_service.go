package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bhanu75/Event-booking/internal/clock"
	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/notify"
	"github.com/bhanu75/Event-booking/internal/repository"
	"github.com/google/uuid"
)

type CreateEventInput struct {
	Title        string
	Description  string
	StartTime    time.Time
	Location     string
	TotalTickets uint
	Price        float64
	ImageURL     string
}

// UpdateEventInput is a partial patch: nil fields are left unchanged.
type UpdateEventInput struct {
	Title        *string
	Description  *string
	StartTime    *time.Time
	Location     *string
	TotalTickets *uint
	Price        *float64
	ImageURL     *string
}

type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, in CreateEventInput) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID, organizerID string, patch UpdateEventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID, organizerID string) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, search string) ([]models.Event, error)
}

type eventService struct {
	events   repository.EventRepository
	bookings repository.BookingRepository
	locks    *EventLocks
	clock    clock.Clock
	notifier Notifier
}

func NewEventService(
	events repository.EventRepository,
	bookings repository.BookingRepository,
	locks *EventLocks,
	clk clock.Clock,
	notifier Notifier,
) EventService {
	return &eventService{
		events:   events,
		bookings: bookings,
		locks:    locks,
		clock:    clk,
		notifier: notifier,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID string, in CreateEventInput) (*models.Event, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.TotalTickets < 1 {
		return nil, fmt.Errorf("%w: total_tickets must be at least 1", ErrInvalidInput)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}

	now := s.clock.Now()
	event := &models.Event{
		ID:               uuid.NewString(),
		Title:            strings.TrimSpace(in.Title),
		Description:      in.Description,
		StartTime:        in.StartTime,
		Location:         in.Location,
		TotalTickets:     in.TotalTickets,
		AvailableTickets: in.TotalTickets,
		OrganizerID:      organizerID,
		Status:           models.EventActive,
		Price:            in.Price,
		ImageURL:         in.ImageURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, organizerID string, patch UpdateEventInput) (*models.Event, error) {
	unlock := s.locks.Lock(eventID)
	event, affected, changes, err := s.updateLocked(ctx, eventID, organizerID, patch)
	unlock()
	if err != nil {
		return nil, err
	}

	// Enqueued only after the lock is released; a slow sink cannot stall
	// bookings, and a failed notification never rolls back the update.
	s.notifier.Enqueue(notify.Job{
		ID:            uuid.NewString(),
		Kind:          notify.KindEventUpdate,
		EventTitle:    event.Title,
		AffectedUsers: affected,
		Changes:       changes,
	})
	return event, nil
}

func (s *eventService) updateLocked(ctx context.Context, eventID, organizerID string, patch UpdateEventInput) (*models.Event, int, string, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, "", ErrEventNotFound
		}
		return nil, 0, "", fmt.Errorf("find event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return nil, 0, "", ErrUnauthorized
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, 0, "", fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}

	bookings, err := s.bookings.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, 0, "", fmt.Errorf("list bookings: %w", err)
	}

	var booked uint
	bookers := make(map[string]struct{})
	for _, b := range bookings {
		booked += b.TicketCount
		bookers[b.UserID] = struct{}{}
	}

	if patch.TotalTickets != nil && *patch.TotalTickets < booked {
		return nil, 0, "", fmt.Errorf("%w: %d already booked", ErrCapacityBelowDemand, booked)
	}

	var changed []string
	if patch.Title != nil {
		event.Title = *patch.Title
		changed = append(changed, "title")
	}
	if patch.Description != nil {
		event.Description = *patch.Description
		changed = append(changed, "description")
	}
	if patch.StartTime != nil {
		event.StartTime = *patch.StartTime
		changed = append(changed, "start_time")
	}
	if patch.Location != nil {
		event.Location = *patch.Location
		changed = append(changed, "location")
	}
	if patch.TotalTickets != nil {
		event.TotalTickets = *patch.TotalTickets
		event.AvailableTickets = *patch.TotalTickets - booked
		changed = append(changed, "total_tickets")
	}
	if patch.Price != nil {
		event.Price = *patch.Price
		changed = append(changed, "price")
	}
	if patch.ImageURL != nil {
		event.ImageURL = *patch.ImageURL
		changed = append(changed, "image_url")
	}
	event.UpdatedAt = s.clock.Now()

	if err := s.events.Save(ctx, event); err != nil {
		return nil, 0, "", fmt.Errorf("save event: %w", err)
	}
	return event, len(bookers), strings.Join(changed, ", "), nil
}

// DeleteEvent hard-deletes an event with no bookings and soft-deletes
// (status=cancelled) one that has any, preserving booking history.
func (s *eventService) DeleteEvent(ctx context.Context, eventID, organizerID string) error {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("find event: %w", err)
	}
	if event.OrganizerID != organizerID {
		return ErrUnauthorized
	}

	hasBookings, err := s.bookings.ExistsForEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("check bookings: %w", err)
	}

	if hasBookings {
		event.Status = models.EventCancelled
		event.UpdatedAt = s.clock.Now()
		if err := s.events.Save(ctx, event); err != nil {
			return fmt.Errorf("save event: %w", err)
		}
		log.Printf("[EventService] WARN: event %s soft deleted (has bookings)", eventID)
		return nil
	}

	if _, err := s.events.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	s.locks.Remove(eventID)
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return event, nil
}

// ListEvents returns active events, optionally filtered by a case-insensitive
// title/location substring match.
func (s *eventService) ListEvents(ctx context.Context, search string) ([]models.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.Status != models.EventActive {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Location), search) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

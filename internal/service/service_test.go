package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bhanu75/Event-booking/internal/clock"
	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/notify"
	"github.com/bhanu75/Event-booking/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// captureNotifier records enqueued jobs synchronously for assertions.
type captureNotifier struct {
	mu   sync.Mutex
	jobs []notify.Job
}

func (n *captureNotifier) Enqueue(job notify.Job) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.jobs = append(n.jobs, job)
}

func (n *captureNotifier) Jobs() []notify.Job {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notify.Job, len(n.jobs))
	copy(out, n.jobs)
	return out
}

type fixture struct {
	users    repository.UserRepository
	events   repository.EventRepository
	bookings repository.BookingRepository
	notifier *captureNotifier
	locks    *EventLocks

	userSvc    UserService
	eventSvc   EventService
	bookingSvc BookingService
	querySvc   QueryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		users:    repository.NewMemoryUserRepository(),
		events:   repository.NewMemoryEventRepository(),
		bookings: repository.NewMemoryBookingRepository(),
		notifier: &captureNotifier{},
	}

	clk := clock.NewFixed(testNow)
	f.locks = NewEventLocks()
	f.userSvc = NewUserService(f.users, clk)
	f.eventSvc = NewEventService(f.events, f.bookings, f.locks, clk, f.notifier)
	f.bookingSvc = NewBookingService(f.bookings, f.events, f.users, f.locks, clk, f.notifier)
	f.querySvc = NewQueryService(f.bookings, f.events, f.users)
	return f
}

func (f *fixture) seedUser(t *testing.T, name, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		CreatedAt:    testNow,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func (f *fixture) seedEvent(t *testing.T, organizerID string, total, available uint) *models.Event {
	t.Helper()
	event := &models.Event{
		ID:               uuid.NewString(),
		Title:            "Music Fest",
		Description:      "Annual music festival",
		StartTime:        testNow.Add(48 * time.Hour),
		Location:         "New York, NY",
		TotalTickets:     total,
		AvailableTickets: available,
		OrganizerID:      organizerID,
		Status:           models.EventActive,
		Price:            50,
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
	require.NoError(t, f.events.Create(context.Background(), event))
	return event
}

// requireConserved asserts availableTickets + sum(booked) == totalTickets.
func (f *fixture) requireConserved(t *testing.T, eventID string) {
	t.Helper()
	event, err := f.events.FindByID(context.Background(), eventID)
	require.NoError(t, err)

	bookings, err := f.bookings.ListByEvent(context.Background(), eventID)
	require.NoError(t, err)

	var booked uint
	for _, b := range bookings {
		booked += b.TicketCount
	}
	require.Equal(t, event.TotalTickets, event.AvailableTickets+booked)
}

package service

import (
	"context"
	"testing"

	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyBookings(t *testing.T) {
	f := newFixture(t)
	organizer := f.seedUser(t, "Sarah", "organizer@test.com", models.RoleOrganizer)
	customer := f.seedUser(t, "Alex", "customer@test.com", models.RoleCustomer)
	other := f.seedUser(t, "Maya", "maya@test.com", models.RoleCustomer)
	event := f.seedEvent(t, organizer.ID, 300, 300)

	_, err := f.bookingSvc.CreateBooking(context.Background(), customer.ID, event.ID, 2, "k1")
	require.NoError(t, err)
	_, err = f.bookingSvc.CreateBooking(context.Background(), other.ID, event.ID, 1, "k2")
	require.NoError(t, err)

	mine, err := f.querySvc.GetMyBookings(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(2), mine[0].Booking.TicketCount)
	require.NotNil(t, mine[0].Event)
	assert.Equal(t, event.Title, mine[0].Event.Title)
}

func TestGetMyBookings_Empty(t *testing.T) {
	f := newFixture(t)
	customer := f.seedUser(t, "Alex", "customer@test.com", models.RoleCustomer)

	mine, err := f.querySvc.GetMyBookings(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestGetEventBookings(t *testing.T) {
	f := newFixture(t)
	organizer := f.seedUser(t, "Sarah", "organizer@test.com", models.RoleOrganizer)
	customer := f.seedUser(t, "Alex", "customer@test.com", models.RoleCustomer)
	event := f.seedEvent(t, organizer.ID, 300, 300)

	_, err := f.bookingSvc.CreateBooking(context.Background(), customer.ID, event.ID, 2, "k1")
	require.NoError(t, err)

	bookings, err := f.querySvc.GetEventBookings(context.Background(), event.ID, organizer.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	require.NotNil(t, bookings[0].User)
	assert.Equal(t, "Alex", bookings[0].User.Name)
}

func TestGetEventBookings_Unauthorized(t *testing.T) {
	f := newFixture(t)
	organizer := f.seedUser(t, "Sarah", "organizer@test.com", models.RoleOrganizer)
	other := f.seedUser(t, "Eve", "other@test.com", models.RoleOrganizer)
	event := f.seedEvent(t, organizer.ID, 300, 300)

	_, err := f.querySvc.GetEventBookings(context.Background(), event.ID, other.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetEventBookings_NotFound(t *testing.T) {
	f := newFixture(t)
	organizer := f.seedUser(t, "Sarah", "organizer@test.com", models.RoleOrganizer)

	_, err := f.querySvc.GetEventBookings(context.Background(), "missing", organizer.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestOrganizerSummary(t *testing.T) {
	f := newFixture(t)
	organizer := f.seedUser(t, "Sarah", "organizer@test.com", models.RoleOrganizer)
	customer := f.seedUser(t, "Alex", "customer@test.com", models.RoleCustomer)

	fest := f.seedEvent(t, organizer.ID, 300, 300) // price 50
	expo := f.seedEvent(t, organizer.ID, 100, 100)
	expo.Price = 25
	require.NoError(t, f.events.Save(context.Background(), expo))

	_, err := f.bookingSvc.CreateBooking(context.Background(), customer.ID, fest.ID, 4, "k1")
	require.NoError(t, err)
	_, err = f.bookingSvc.CreateBooking(context.Background(), customer.ID, expo.ID, 2, "k2")
	require.NoError(t, err)

	report, err := f.querySvc.OrganizerSummary(context.Background(), organizer.ID)
	require.NoError(t, err)
	require.Len(t, report.Events, 2)
	assert.Equal(t, uint(6), report.TicketsSold)
	assert.Equal(t, 4*50.0+2*25.0, report.Revenue)

	for _, sales := range report.Events {
		switch sales.Event.ID {
		case fest.ID:
			assert.Equal(t, uint(4), sales.TicketsSold)
			assert.Equal(t, 200.0, sales.Revenue)
		case expo.ID:
			assert.Equal(t, uint(2), sales.TicketsSold)
			assert.Equal(t, 50.0, sales.Revenue)
		default:
			t.Fatalf("unexpected event %s in summary", sales.Event.ID)
		}
	}
}

func TestOrganizerSummary_NoEvents(t *testing.T) {
	f := newFixture(t)
	organizer := f.seedUser(t, "Sarah", "organizer@test.com", models.RoleOrganizer)

	report, err := f.querySvc.OrganizerSummary(context.Background(), organizer.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Events)
	assert.Zero(t, report.TicketsSold)
	assert.Zero(t, report.Revenue)
}

package repository

import (
	"context"
	"sort"

	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/store"
)

// Memory implementations back the services in tests and in single-process
// deployments without a database. They never fail with infrastructure errors.

type memoryUserRepository struct {
	users *store.Table[models.User]
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: store.NewTable[models.User]()}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.users.Insert(user.ID, *user)
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.users.Find(func(u models.User) bool { return u.Email == email })
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

type memoryEventRepository struct {
	events *store.Table[models.Event]
}

func NewMemoryEventRepository() EventRepository {
	return &memoryEventRepository{events: store.NewTable[models.Event]()}
}

func (r *memoryEventRepository) Create(ctx context.Context, event *models.Event) error {
	r.events.Insert(event.ID, *event)
	return nil
}

func (r *memoryEventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	event, ok := r.events.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &event, nil
}

func (r *memoryEventRepository) Save(ctx context.Context, event *models.Event) error {
	if _, ok := r.events.Update(event.ID, func(models.Event) models.Event { return *event }); !ok {
		return ErrNotFound
	}
	return nil
}

func (r *memoryEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.events.Delete(id), nil
}

func (r *memoryEventRepository) List(ctx context.Context) ([]models.Event, error) {
	events := r.events.Filter(func(models.Event) bool { return true })
	sortEvents(events)
	return events, nil
}

func (r *memoryEventRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	events := r.events.Filter(func(e models.Event) bool { return e.OrganizerID == organizerID })
	sortEvents(events)
	return events, nil
}

func sortEvents(events []models.Event) {
	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		}
		return events[i].ID < events[j].ID
	})
}

type memoryBookingRepository struct {
	bookings *store.Table[models.Booking]
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{bookings: store.NewTable[models.Booking]()}
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	key := booking.IdempotencyKey
	ok := r.bookings.InsertUnique(booking.ID, *booking, func(b models.Booking) bool {
		return b.IdempotencyKey == key
	})
	if !ok {
		return ErrDuplicateKey
	}
	return nil
}

func (r *memoryBookingRepository) FindByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error) {
	booking, ok := r.bookings.Find(func(b models.Booking) bool { return b.IdempotencyKey == key })
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (r *memoryBookingRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Booking, error) {
	bookings := r.bookings.Filter(func(b models.Booking) bool { return b.EventID == eventID })
	sortBookings(bookings)
	return bookings, nil
}

func (r *memoryBookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	bookings := r.bookings.Filter(func(b models.Booking) bool { return b.UserID == userID })
	sortBookings(bookings)
	return bookings, nil
}

func (r *memoryBookingRepository) ExistsForEvent(ctx context.Context, eventID string) (bool, error) {
	_, ok := r.bookings.Find(func(b models.Booking) bool { return b.EventID == eventID })
	return ok, nil
}

func sortBookings(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
		}
		return bookings[i].ID < bookings[j].ID
	})
}

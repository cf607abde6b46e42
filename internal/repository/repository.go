// Package repository defines the record-store contracts the services are
// written against, with an in-memory implementation and a Postgres one.
package repository

import (
	"context"
	"errors"

	"github.com/bhanu75/Event-booking/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned by BookingRepository.Create when the
	// idempotency key is already taken. Both implementations enforce the
	// uniqueness atomically, so concurrent inserts cannot both commit.
	ErrDuplicateKey = errors.New("duplicate idempotency key")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Save(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]models.Event, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByIdempotencyKey(ctx context.Context, key string) (*models.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ExistsForEvent(ctx context.Context, eventID string) (bool, error)
}

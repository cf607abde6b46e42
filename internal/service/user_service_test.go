package service

import (
	"context"
	"testing"

	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	f := newFixture(t)

	user, err := f.userSvc.Register(context.Background(), RegisterInput{
		Name:     "Alex",
		Email:    "Customer@Test.com",
		Password: "pass123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, "customer@test.com", user.Email) // normalized
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")))
}

func TestRegister_OrganizerRole(t *testing.T) {
	f := newFixture(t)

	user, err := f.userSvc.Register(context.Background(), RegisterInput{
		Name:     "Sarah",
		Email:    "organizer@test.com",
		Password: "pass123",
		Role:     models.RoleOrganizer,
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleOrganizer, user.Role)
}

func TestRegister_EmailTaken(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, "Alex", "customer@test.com", models.RoleCustomer)

	_, err := f.userSvc.Register(context.Background(), RegisterInput{
		Name:     "Another",
		Email:    "customer@test.com",
		Password: "pass123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"empty name", RegisterInput{Email: "a@b.com", Password: "pass123"}},
		{"bad email", RegisterInput{Name: "Alex", Email: "not-an-email", Password: "pass123"}},
		{"short password", RegisterInput{Name: "Alex", Email: "a@b.com", Password: "123"}},
		{"unknown role", RegisterInput{Name: "Alex", Email: "a@b.com", Password: "pass123", Role: "admin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.userSvc.Register(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetUser(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedUser(t, "Alex", "customer@test.com", models.RoleCustomer)

	user, err := f.userSvc.GetUser(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)

	_, err = f.userSvc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

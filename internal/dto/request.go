package dto

import (
	"time"

	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/service"
)

type RegisterUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role,omitempty"`
}

type CreateEventRequest struct {
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time"`
	Location     string    `json:"location"`
	TotalTickets uint      `json:"total_tickets"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"image_url"`
}

type UpdateEventRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	Location     *string    `json:"location,omitempty"`
	TotalTickets *uint      `json:"total_tickets,omitempty"`
	Price        *float64   `json:"price,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
}

type CreateBookingRequest struct {
	EventID        string `json:"event_id"`
	TicketCount    uint   `json:"ticket_count"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (r CreateEventRequest) ToInput() service.CreateEventInput {
	return service.CreateEventInput{
		Title:        r.Title,
		Description:  r.Description,
		StartTime:    r.StartTime,
		Location:     r.Location,
		TotalTickets: r.TotalTickets,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
	}
}

func (r UpdateEventRequest) ToInput() service.UpdateEventInput {
	return service.UpdateEventInput{
		Title:        r.Title,
		Description:  r.Description,
		StartTime:    r.StartTime,
		Location:     r.Location,
		TotalTickets: r.TotalTickets,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
	}
}

package dto

import (
	"time"

	"github.com/bhanu75/Event-booking/internal/models"
	"github.com/bhanu75/Event-booking/internal/service"
)

type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
}

type EventResponse struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	StartTime        time.Time          `json:"start_time"`
	Location         string             `json:"location"`
	TotalTickets     uint               `json:"total_tickets"`
	AvailableTickets uint               `json:"available_tickets"`
	OrganizerID      string             `json:"organizer_id"`
	Status           models.EventStatus `json:"status"`
	Price            float64            `json:"price"`
	ImageURL         string             `json:"image_url"`
}

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	EventID     string    `json:"event_id"`
	TicketCount uint      `json:"ticket_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type MyBookingResponse struct {
	BookingResponse
	Event *EventResponse `json:"event,omitempty"`
}

type EventBookingResponse struct {
	BookingResponse
	User *UserResponse `json:"user,omitempty"`
}

type EventSalesResponse struct {
	Event       EventResponse `json:"event"`
	TicketsSold uint          `json:"tickets_sold"`
	Revenue     float64       `json:"revenue"`
}

type OrganizerSummaryResponse struct {
	Events      []EventSalesResponse `json:"events"`
	TicketsSold uint                 `json:"tickets_sold"`
	Revenue     float64              `json:"revenue"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		StartTime:        e.StartTime,
		Location:         e.Location,
		TotalTickets:     e.TotalTickets,
		AvailableTickets: e.AvailableTickets,
		OrganizerID:      e.OrganizerID,
		Status:           e.Status,
		Price:            e.Price,
		ImageURL:         e.ImageURL,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		EventID:     b.EventID,
		TicketCount: b.TicketCount,
		CreatedAt:   b.CreatedAt,
	}
}

func ToMyBookingResponse(b service.BookingWithEvent) MyBookingResponse {
	resp := MyBookingResponse{BookingResponse: ToBookingResponse(&b.Booking)}
	if b.Event != nil {
		event := ToEventResponse(b.Event)
		resp.Event = &event
	}
	return resp
}

func ToEventBookingResponse(b service.BookingWithUser) EventBookingResponse {
	resp := EventBookingResponse{BookingResponse: ToBookingResponse(&b.Booking)}
	if b.User != nil {
		user := ToUserResponse(b.User)
		resp.User = &user
	}
	return resp
}

func ToOrganizerSummaryResponse(r *service.OrganizerReport) OrganizerSummaryResponse {
	resp := OrganizerSummaryResponse{
		Events:      make([]EventSalesResponse, len(r.Events)),
		TicketsSold: r.TicketsSold,
		Revenue:     r.Revenue,
	}
	for i, s := range r.Events {
		resp.Events[i] = EventSalesResponse{
			Event:       ToEventResponse(&s.Event),
			TicketsSold: s.TicketsSold,
			Revenue:     s.Revenue,
		}
	}
	return resp
}

package models

import "time"

type Role string

const (
	RoleCustomer  Role = "customer"
	RoleOrganizer Role = "organizer"
)

type EventStatus string

const (
	EventActive    EventStatus = "active"
	EventCancelled EventStatus = "cancelled"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Event struct {
	ID               string      `gorm:"primaryKey" json:"id"`
	Title            string      `gorm:"not null" json:"title"`
	Description      string      `json:"description"`
	StartTime        time.Time   `gorm:"not null" json:"start_time"`
	Location         string      `json:"location"`
	TotalTickets     uint        `gorm:"not null" json:"total_tickets"`
	AvailableTickets uint        `gorm:"not null" json:"available_tickets"`
	OrganizerID      string      `gorm:"index;not null" json:"organizer_id"`
	Status           EventStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Price            float64     `gorm:"not null" json:"price"`
	ImageURL         string      `json:"image_url"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

type Booking struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"index;not null" json:"user_id"`
	EventID        string    `gorm:"index;not null" json:"event_id"`
	TicketCount    uint      `gorm:"not null" json:"ticket_count"`
	IdempotencyKey string    `gorm:"uniqueIndex;not null" json:"idempotency_key"`
	CreatedAt      time.Time `json:"created_at"`
}

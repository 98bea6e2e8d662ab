package model

import (
	"time"
)

const (
	EntityName = "event"

	FieldID     = "id"
	FieldTitle  = "title"
	FieldStatus = "status"
)

// Event keeps date and time as the display strings the client submits
// ("2025-03-14", "21:00"); the store never interprets them.
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Price          float64   `json:"price"`
	Capacity       int       `json:"capacity"`
	Booked         int       `json:"booked"`
	Image          string    `json:"image,omitempty"`
	Status         string    `json:"status"`
	BookingEnabled bool      `json:"bookingEnabled"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Remaining returns the unbooked capacity.
func (e Event) Remaining() int {
	return e.Capacity - e.Booked
}

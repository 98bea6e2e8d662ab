package model

import (
	"time"
)

const (
	EntityName = "booking"

	FieldID      = "id"
	FieldUserID  = "userId"
	FieldEventID = "eventId"
	FieldStatus  = "status"
)

// Booking snapshots the event title, date and time at creation so the record
// stays readable after the event changes or disappears.
type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	EventID       string    `json:"eventId"`
	EventTitle    string    `json:"eventTitle"`
	EventDate     string    `json:"eventDate"`
	EventTime     string    `json:"eventTime"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

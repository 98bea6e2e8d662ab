package model

import (
	"time"
)

const (
	EntityName = "notification"
)

// Notification is addressed to a single user id or to the broadcast audience
// "all". Broadcasts keep a single record; the fan-out happens at read time.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

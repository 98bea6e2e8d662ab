package model

import (
	"time"
)

const (
	EntityName = "user"

	FieldID    = "id"
	FieldEmail = "email"
	FieldRole  = "role"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitized returns a copy with the password stripped. Every record that
// leaves the service layer goes through this, including the session document.
func (u User) Sanitized() User {
	u.Password = ""

	return u
}

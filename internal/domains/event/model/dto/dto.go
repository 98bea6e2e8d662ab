package dto

import (
	"club/internal/domains/event/model"
	"club/shared/constant"
	"club/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title          string  `json:"title"          validate:"required,max=200"`
	Description    string  `json:"description"    validate:"omitempty,max=2000"`
	Date           string  `json:"date"           validate:"required,datetime=2006-01-02"`
	Time           string  `json:"time"           validate:"required,datetime=15:04"`
	Price          float64 `json:"price"          validate:"gte=0"`
	Capacity       int     `json:"capacity"       validate:"required,gt=0"`
	Image          string  `json:"image"          validate:"omitempty,url"`
	BookingEnabled *bool   `json:"bookingEnabled" validate:"omitempty"`
}

// ToModel builds the event record. The booked count and status are seeded
// here and never taken from the request.
func (c *CreateEventRequest) ToModel() model.Event {
	bookingEnabled := true
	if c.BookingEnabled != nil {
		bookingEnabled = *c.BookingEnabled
	}

	return model.Event{
		ID:             uuid.NewString(),
		Title:          c.Title,
		Description:    c.Description,
		Date:           c.Date,
		Time:           c.Time,
		Price:          c.Price,
		Capacity:       c.Capacity,
		Booked:         0,
		Image:          c.Image,
		Status:         constant.EventStatusActive,
		BookingEnabled: bookingEnabled,
		CreatedAt:      timezone.Now(),
	}
}

// UpdateEventRequest carries field-level patches. Nil pointers leave the
// stored value untouched; booked and status are not patchable.
type UpdateEventRequest struct {
	Title          *string  `json:"title"          validate:"omitempty,max=200"`
	Description    *string  `json:"description"    validate:"omitempty,max=2000"`
	Date           *string  `json:"date"           validate:"omitempty,datetime=2006-01-02"`
	Time           *string  `json:"time"           validate:"omitempty,datetime=15:04"`
	Price          *float64 `json:"price"          validate:"omitempty,gte=0"`
	Capacity       *int     `json:"capacity"       validate:"omitempty,gt=0"`
	Image          *string  `json:"image"          validate:"omitempty,url"`
	BookingEnabled *bool    `json:"bookingEnabled" validate:"omitempty"`
}

func (u *UpdateEventRequest) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Date == nil && u.Time == nil &&
		u.Price == nil && u.Capacity == nil && u.Image == nil && u.BookingEnabled == nil
}

// Apply merges the patch onto the record.
func (u *UpdateEventRequest) Apply(event model.Event) model.Event {
	if u.Title != nil {
		event.Title = *u.Title
	}

	if u.Description != nil {
		event.Description = *u.Description
	}

	if u.Date != nil {
		event.Date = *u.Date
	}

	if u.Time != nil {
		event.Time = *u.Time
	}

	if u.Price != nil {
		event.Price = *u.Price
	}

	if u.Capacity != nil {
		event.Capacity = *u.Capacity
	}

	if u.Image != nil {
		event.Image = *u.Image
	}

	if u.BookingEnabled != nil {
		event.BookingEnabled = *u.BookingEnabled
	}

	return event
}

type EventResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Price          float64   `json:"price"`
	Capacity       int       `json:"capacity"`
	Booked         int       `json:"booked"`
	Remaining      int       `json:"remaining"`
	Image          string    `json:"image,omitempty"`
	Status         string    `json:"status"`
	BookingEnabled bool      `json:"bookingEnabled"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (r *EventResponse) FromModel(event model.Event) {
	r.ID = event.ID
	r.Title = event.Title
	r.Description = event.Description
	r.Date = event.Date
	r.Time = event.Time
	r.Price = event.Price
	r.Capacity = event.Capacity
	r.Booked = event.Booked
	r.Remaining = event.Remaining()
	r.Image = event.Image
	r.Status = event.Status
	r.BookingEnabled = event.BookingEnabled
	r.CreatedAt = event.CreatedAt
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event) {
	r.TotalData = len(models)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}

// EventSummaryResponse is the owner-dashboard aggregate.
type EventSummaryResponse struct {
	ActiveEvents    int     `json:"active_events"`
	TotalCapacity   int     `json:"total_capacity"`
	TotalBooked     int     `json:"total_booked"`
	AverageCapacity float64 `json:"average_capacity"`
}

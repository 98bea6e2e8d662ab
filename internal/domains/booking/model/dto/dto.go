package dto

import (
	"club/internal/domains/booking/model"
	eventModel "club/internal/domains/event/model"
	"club/shared/constant"
	"club/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UserID   string `json:"userId"   validate:"required"`
	EventID  string `json:"eventId"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// ToModel builds the booking with the event snapshot denormalized in. Every
// booking is born confirmed and paid.
func (c *CreateBookingRequest) ToModel(event eventModel.Event) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		UserID:        c.UserID,
		EventID:       c.EventID,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventTime:     event.Time,
		Quantity:      c.Quantity,
		TotalPrice:    event.Price * float64(c.Quantity),
		Status:        constant.BookingStatusConfirmed,
		PaymentStatus: constant.PaymentStatusPaid,
		CreatedAt:     timezone.Now(),
	}
}

type BookingResponse struct {
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

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.UserID = booking.UserID
	r.EventID = booking.EventID
	r.EventTitle = booking.EventTitle
	r.EventDate = booking.EventDate
	r.EventTime = booking.EventTime
	r.Quantity = booking.Quantity
	r.TotalPrice = booking.TotalPrice
	r.Status = booking.Status
	r.PaymentStatus = booking.PaymentStatus
	r.CreatedAt = booking.CreatedAt
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// RevenueResponse is the owner-dashboard aggregate over confirmed bookings.
type RevenueResponse struct {
	TotalRevenue      float64 `json:"total_revenue"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	TicketsSold       int     `json:"tickets_sold"`
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"club/infras/otel"
	"club/internal/domains/booking/model"
	eventModel "club/internal/domains/event/model"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/store"
	"context"
	"fmt"
)

type Booking interface {
	GetAll(ctx context.Context) []model.Booking
	GetByID(ctx context.Context, id string) (model.Booking, bool)
	GetByUserID(ctx context.Context, userID string) []model.Booking
	Update(ctx context.Context, booking model.Booking) error
	InsertWithEventUpdate(ctx context.Context, booking model.Booking, event eventModel.Event) error
}

type repositoryImpl struct {
	bookings store.Collection[model.Booking]
	events   store.Collection[eventModel.Event]
	store    kv.KV
}

func New(kvStore kv.KV, otl otel.Otel) Booking {
	return &repositoryImpl{
		bookings: store.NewCollection[model.Booking](model.EntityName, constant.StoreKeyBookings, kvStore, otl),
		events:   store.NewCollection[eventModel.Event](eventModel.EntityName, constant.StoreKeyEvents, kvStore, otl),
		store:    kvStore,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) []model.Booking {
	return r.bookings.All(ctx)
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, bool) {
	for _, booking := range r.bookings.All(ctx) {
		if booking.ID == id {
			return booking, true
		}
	}

	return model.Booking{}, false
}

func (r *repositoryImpl) GetByUserID(ctx context.Context, userID string) []model.Booking {
	records := r.bookings.All(ctx)

	matched := make([]model.Booking, 0, len(records))
	for _, booking := range records {
		if booking.UserID == userID {
			matched = append(matched, booking)
		}
	}

	return matched
}

func (r *repositoryImpl) Update(ctx context.Context, booking model.Booking) error {
	records := r.bookings.All(ctx)
	for i := range records {
		if records[i].ID == booking.ID {
			records[i] = booking

			return r.bookings.Replace(ctx, records)
		}
	}

	return fmt.Errorf("booking (%s) not in collection", booking.ID)
}

// InsertWithEventUpdate appends the booking and replaces the event record in
// a single multi-key store write, so a failure leaves both collections at
// their previous state and the booked count can never drift from the
// bookings that produced it.
func (r *repositoryImpl) InsertWithEventUpdate(ctx context.Context, booking model.Booking, event eventModel.Event) error {
	bookings := append(r.bookings.All(ctx), booking)

	events := r.events.All(ctx)
	replaced := false
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = event
			replaced = true

			break
		}
	}

	if !replaced {
		return fmt.Errorf("event (%s) not in collection", event.ID)
	}

	bookingsBlob, err := r.bookings.Encode(bookings)
	if err != nil {
		return err
	}

	eventsBlob, err := r.events.Encode(events)
	if err != nil {
		return err
	}

	entries := map[string][]byte{
		r.bookings.Key(): bookingsBlob,
		r.events.Key():   eventsBlob,
	}

	if err := r.store.SetMulti(ctx, entries); err != nil {
		return fmt.Errorf("failed to write booking and event atomically: %w", err)
	}

	return nil
}

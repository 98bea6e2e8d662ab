package service

import (
	"club/infras/otel"
	"club/internal/domains/booking/model/dto"
	"club/internal/domains/booking/repository"
	eventRepo "club/internal/domains/event/repository"
	"club/shared/constant"
	"club/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	GetUserBookings(ctx context.Context, userID string) (dto.GetBookingsResponse, error)
	Revenue(ctx context.Context) (dto.RevenueResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	eventRepo eventRepo.Event
	otel      otel.Otel
}

func New(repo repository.Booking, eventRepo eventRepo.Event, otl otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		eventRepo: eventRepo,
		otel:      otl,
	}
}

// Create books quantity places on an event. The booking append and the booked
// increment land in one atomic store write.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, found := s.eventRepo.GetByID(ctx, req.EventID)
	if !found {
		return res, failure.BadRequestFromString("event does not exist")
	}

	if !event.BookingEnabled {
		return res, failure.BadRequestFromString("booking is disabled for this event")
	}

	if req.Quantity > event.Remaining() {
		return res, failure.Conflict(fmt.Sprintf("only %d places left", event.Remaining()))
	}

	booking := req.ToModel(event)
	event.Booked += req.Quantity

	if err = s.repo.InsertWithEventUpdate(ctx, booking, event); err != nil {
		log.Error().Err(err).Str("event_id", req.EventID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	return res, nil
}

// Cancel flips the booking to cancelled. The event's booked count is left
// alone; cancelled places are not resold.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found := s.repo.GetByID(ctx, id)
	if !found {
		return failure.NotFound("booking not found")
	}

	if booking.Status == constant.BookingStatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled")
	}

	booking.Status = constant.BookingStatusCancelled

	if err = s.repo.Update(ctx, booking); err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.FromModels(s.repo.GetAll(ctx))

	return res, nil
}

func (s *serviceImpl) GetUserBookings(ctx context.Context, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetUserBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.FromModels(s.repo.GetByUserID(ctx, userID))

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	for _, booking := range s.repo.GetAll(ctx) {
		if booking.Status != constant.BookingStatusConfirmed {
			continue
		}

		res.TotalRevenue += booking.TotalPrice
		res.ConfirmedBookings++
		res.TicketsSold += booking.Quantity
	}

	return res, nil
}

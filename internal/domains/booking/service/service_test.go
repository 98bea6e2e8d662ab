package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"club/infras/otel/mocks"
	"club/internal/domains/booking/model"
	"club/internal/domains/booking/model/dto"
	"club/internal/domains/booking/repository"
	"club/internal/domains/booking/service"
	eventModel "club/internal/domains/event/model"
	eventRepo "club/internal/domains/event/repository"
	"club/shared/constant"
	"club/shared/kv"
	kvMocks "club/shared/kv/mocks"
	"club/shared/timezone"
)

func newFixture(t *testing.T, events ...eventModel.Event) (service.Booking, repository.Booking, eventRepo.Event) {
	t.Helper()

	backing := kv.NewMemory()

	evRepo := eventRepo.New(backing, mocks.NewOtel())
	for _, event := range events {
		require.NoError(t, evRepo.Insert(context.Background(), event))
	}

	repo := repository.New(backing, mocks.NewOtel())

	return service.New(repo, evRepo, mocks.NewOtel()), repo, evRepo
}

func partyNight() eventModel.Event {
	return eventModel.Event{
		ID:             "event-1",
		Title:          "Friday Night Party",
		Date:           "2026-09-04",
		Time:           "21:00",
		Price:          25,
		Capacity:       100,
		Booked:         95,
		Status:         constant.EventStatusActive,
		BookingEnabled: true,
		CreatedAt:      timezone.Now(),
	}
}

func TestBookingService_Create(t *testing.T) {
	disabled := partyNight()
	disabled.ID = "event-2"
	disabled.BookingEnabled = false

	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr bool
	}{
		{
			name: "successful booking",
			req:  dto.CreateBookingRequest{UserID: "user-1", EventID: "event-1", Quantity: 2},
		},
		{
			name: "exact remaining capacity",
			req:  dto.CreateBookingRequest{UserID: "user-1", EventID: "event-1", Quantity: 5},
		},
		{
			name:    "quantity over remaining capacity",
			req:     dto.CreateBookingRequest{UserID: "user-1", EventID: "event-1", Quantity: 6},
			wantErr: true,
		},
		{
			name:    "event does not exist",
			req:     dto.CreateBookingRequest{UserID: "user-1", EventID: "ghost", Quantity: 1},
			wantErr: true,
		},
		{
			name:    "booking disabled",
			req:     dto.CreateBookingRequest{UserID: "user-1", EventID: "event-2", Quantity: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, evRepo := newFixture(t, partyNight(), disabled)
			ctx := context.Background()

			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				event, found := evRepo.GetByID(ctx, "event-1")
				require.True(t, found)
				assert.Equal(t, 95, event.Booked, "failed create must not move the booked count")
				assert.Empty(t, repo.GetAll(ctx))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
			assert.Equal(t, constant.PaymentStatusPaid, res.PaymentStatus)
			assert.Equal(t, "Friday Night Party", res.EventTitle)
			assert.Equal(t, "2026-09-04", res.EventDate)
			assert.Equal(t, "21:00", res.EventTime)
			assert.Equal(t, float64(tt.req.Quantity)*25, res.TotalPrice)

			event, found := evRepo.GetByID(ctx, "event-1")
			require.True(t, found)
			assert.Equal(t, 95+tt.req.Quantity, event.Booked)

			bookings := repo.GetAll(ctx)
			require.Len(t, bookings, 1)
			assert.Equal(t, res.ID, bookings[0].ID)
		})
	}
}

func TestBookingService_CreateAtomicWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventsBlob, err := json.Marshal([]eventModel.Event{partyNight()})
	require.NoError(t, err)

	mockKV := kvMocks.NewMockKV(ctrl)
	mockKV.EXPECT().
		Get(gomock.Any(), constant.StoreKeyEvents).
		Return(eventsBlob, nil).
		AnyTimes()
	mockKV.EXPECT().
		Get(gomock.Any(), constant.StoreKeyBookings).
		Return(nil, kv.ErrKeyNotFound).
		AnyTimes()
	mockKV.EXPECT().
		SetMulti(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	svc := service.New(
		repository.New(mockKV, mocks.NewOtel()),
		eventRepo.New(mockKV, mocks.NewOtel()),
		mocks.NewOtel(),
	)

	_, err = svc.Create(context.Background(), dto.CreateBookingRequest{
		UserID:   "user-1",
		EventID:  "event-1",
		Quantity: 1,
	})

	assert.Error(t, err)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, repo, evRepo := newFixture(t, partyNight())
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreateBookingRequest{UserID: "user-1", EventID: "event-1", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, res.ID))

	cancelled, found := repo.GetByID(ctx, res.ID)
	require.True(t, found)
	assert.Equal(t, constant.BookingStatusCancelled, cancelled.Status)

	event, found := evRepo.GetByID(ctx, "event-1")
	require.True(t, found)
	assert.Equal(t, 98, event.Booked, "cancellation does not free capacity")

	assert.Error(t, svc.Cancel(ctx, res.ID), "already cancelled")
	assert.Error(t, svc.Cancel(ctx, "ghost"))
}

func TestBookingService_GetUserBookings(t *testing.T) {
	svc, repo, _ := newFixture(t, partyNight())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateBookingRequest{UserID: "user-1", EventID: "event-1", Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateBookingRequest{UserID: "user-2", EventID: "event-1", Quantity: 2})
	require.NoError(t, err)

	res, err := svc.GetUserBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "user-1", res.Bookings[0].UserID)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)
	assert.Len(t, repo.GetAll(ctx), 2)
}

func TestBookingService_Revenue(t *testing.T) {
	svc, repo, _ := newFixture(t, partyNight())
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateBookingRequest{UserID: "user-1", EventID: "event-1", Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateBookingRequest{UserID: "user-2", EventID: "event-1", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, first.ID))

	res, err := svc.Revenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ConfirmedBookings)
	assert.Equal(t, 3, res.TicketsSold)
	assert.InDelta(t, 75.0, res.TotalRevenue, 0.001)

	var cancelled model.Booking
	cancelled, found := repo.GetByID(ctx, first.ID)
	require.True(t, found)
	assert.Equal(t, constant.BookingStatusCancelled, cancelled.Status)
}

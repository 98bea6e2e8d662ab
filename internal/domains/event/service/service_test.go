package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"club/config"
	"club/infras/otel/mocks"
	s3Mocks "club/infras/s3/mocks"
	"club/internal/domains/event/model"
	"club/internal/domains/event/model/dto"
	"club/internal/domains/event/repository"
	"club/internal/domains/event/service"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/timezone"
)

func newFixture(t *testing.T, events ...model.Event) (service.Event, repository.Event, *s3Mocks.MockS3, *config.Config) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repository.New(kv.NewMemory(), mocks.NewOtel())
	for _, event := range events {
		require.NoError(t, repo.Insert(context.Background(), event))
	}

	mockS3 := s3Mocks.NewMockS3(ctrl)
	cfg := &config.Config{}

	return service.New(repo, cfg, mocks.NewOtel(), mockS3), repo, mockS3, cfg
}

func partyNight() model.Event {
	return model.Event{
		ID:             "event-1",
		Title:          "Friday Night Party",
		Description:    "The biggest party of the week",
		Date:           "2026-09-04",
		Time:           "21:00",
		Price:          25,
		Capacity:       100,
		Booked:         45,
		Status:         constant.EventStatusActive,
		BookingEnabled: true,
		CreatedAt:      timezone.Now(),
	}
}

func TestEventService_CreateSeedsBookedAndStatus(t *testing.T) {
	svc, repo, _, _ := newFixture(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreateEventRequest{
		Title:    "VIP Night",
		Date:     "2026-10-01",
		Time:     "22:00",
		Price:    80,
		Capacity: 30,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Zero(t, res.Booked)
	assert.Equal(t, constant.EventStatusActive, res.Status)
	assert.True(t, res.BookingEnabled, "booking enabled by default")
	assert.Equal(t, 30, res.Remaining)

	stored, found := repo.GetByID(ctx, res.ID)
	require.True(t, found)
	assert.Zero(t, stored.Booked)
}

func TestEventService_GetAndGetAll(t *testing.T) {
	svc, _, _, _ := newFixture(t, partyNight())
	ctx := context.Background()

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all.Events, 1)
	assert.Equal(t, 55, all.Events[0].Remaining)

	single, err := svc.Get(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, "Friday Night Party", single.Title)

	_, err = svc.Get(ctx, "ghost")
	assert.Error(t, err)
}

func TestEventService_Update(t *testing.T) {
	title := "Friday Night Fever"
	lowCapacity := 10
	price := 30.0

	tests := []struct {
		name    string
		id      string
		req     dto.UpdateEventRequest
		wantErr bool
	}{
		{
			name: "patch title and price",
			id:   "event-1",
			req:  dto.UpdateEventRequest{Title: &title, Price: &price},
		},
		{
			name:    "empty patch rejected",
			id:      "event-1",
			req:     dto.UpdateEventRequest{},
			wantErr: true,
		},
		{
			name:    "capacity below booked rejected",
			id:      "event-1",
			req:     dto.UpdateEventRequest{Capacity: &lowCapacity},
			wantErr: true,
		},
		{
			name:    "unknown event",
			id:      "ghost",
			req:     dto.UpdateEventRequest{Title: &title},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newFixture(t, partyNight())

			err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			updated, found := repo.GetByID(context.Background(), tt.id)
			require.True(t, found)
			assert.Equal(t, title, updated.Title)
			assert.Equal(t, price, updated.Price)
			assert.Equal(t, 45, updated.Booked, "unpatched field untouched")
			assert.Equal(t, "21:00", updated.Time, "unpatched field untouched")
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	svc, repo, _, _ := newFixture(t, partyNight())
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "event-1"))

	_, found := repo.GetByID(ctx, "event-1")
	assert.False(t, found)

	assert.Error(t, svc.Delete(ctx, "event-1"))
}

func TestEventService_SetImage(t *testing.T) {
	svc, repo, _, _ := newFixture(t, partyNight())
	ctx := context.Background()

	require.NoError(t, svc.SetImage(ctx, "event-1", "https://cdn.club.example/events/party.jpg"))

	updated, found := repo.GetByID(ctx, "event-1")
	require.True(t, found)
	assert.Equal(t, "https://cdn.club.example/events/party.jpg", updated.Image)

	assert.Error(t, svc.SetImage(ctx, "ghost", "https://cdn.club.example/x.jpg"))
}

func TestEventService_UploadImageDisabled(t *testing.T) {
	svc, _, _, cfg := newFixture(t, partyNight())
	cfg.External.S3.Enable = false

	_, err := svc.UploadImage(context.Background(), "event-1", nil, nil)

	assert.Error(t, err)
}

func TestEventService_Summary(t *testing.T) {
	second := partyNight()
	second.ID = "event-2"
	second.Title = "Ladies Night"
	second.Capacity = 80
	second.Booked = 20

	svc, _, _, _ := newFixture(t, partyNight(), second)

	res, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, res.ActiveEvents)
	assert.Equal(t, 180, res.TotalCapacity)
	assert.Equal(t, 65, res.TotalBooked)
	assert.InDelta(t, 90.0, res.AverageCapacity, 0.001)
}

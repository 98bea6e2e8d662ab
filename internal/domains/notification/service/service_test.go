package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"club/config"
	"club/infras/kafka"
	kafkaMocks "club/infras/kafka/mocks"
	"club/infras/otel/mocks"
	"club/internal/domains/notification/model/dto"
	"club/internal/domains/notification/repository"
	"club/internal/domains/notification/service"
	"club/shared/constant"
	"club/shared/kv"
)

func newFixture(t *testing.T) (service.Notification, repository.Notification, *kafkaMocks.MockClient, *config.Config) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repository.New(kv.NewMemory(), mocks.NewOtel())
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	cfg := &config.Config{}

	return service.New(repo, cfg, mocks.NewOtel(), mockKafka), repo, mockKafka, cfg
}

func TestNotificationService_Create(t *testing.T) {
	svc, repo, _, _ := newFixture(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreateNotificationRequest{
		UserID:  "user-1",
		Title:   "Booking confirmed",
		Message: "See you Friday night.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.False(t, res.Read)

	stored, found := repo.GetByID(ctx, res.ID)
	require.True(t, found)
	assert.False(t, stored.Read)
}

func TestNotificationService_CreatePublishesWhenEnabled(t *testing.T) {
	svc, _, mockKafka, cfg := newFixture(t)
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "club.notifications"

	published := make(chan struct{})
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "club.notifications", gomock.Any()).
		DoAndReturn(func(context.Context, string, ...kafka.Message) error {
			close(published)

			return nil
		})

	_, err := svc.Create(context.Background(), dto.CreateNotificationRequest{
		UserID:  constant.NotificationAudienceAll,
		Title:   "Maintenance tonight",
		Message: "The club closes early.",
	})
	require.NoError(t, err)

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("notification was never published")
	}
}

func TestNotificationService_ForUserIncludesBroadcasts(t *testing.T) {
	svc, _, _, _ := newFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateNotificationRequest{UserID: "user-1", Title: "Yours", Message: "m"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateNotificationRequest{UserID: "user-2", Title: "Theirs", Message: "m"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateNotificationRequest{UserID: constant.NotificationAudienceAll, Title: "Everyone", Message: "m"})
	require.NoError(t, err)

	res, err := svc.ForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, res.Notifications, 2)

	titles := []string{res.Notifications[0].Title, res.Notifications[1].Title}
	assert.ElementsMatch(t, []string{"Yours", "Everyone"}, titles)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalData)
}

func TestNotificationService_MarkRead(t *testing.T) {
	svc, repo, _, _ := newFixture(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreateNotificationRequest{UserID: "user-1", Title: "t", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, res.ID))

	stored, found := repo.GetByID(ctx, res.ID)
	require.True(t, found)
	assert.True(t, stored.Read)

	assert.Error(t, svc.MarkRead(ctx, "ghost"))
}

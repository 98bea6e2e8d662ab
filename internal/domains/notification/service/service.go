package service

import (
	"club/config"
	"club/infras/kafka"
	"club/infras/otel"
	"club/internal/domains/notification/model/dto"
	"club/internal/domains/notification/repository"
	"club/shared/constant"
	"club/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Create(ctx context.Context, req dto.CreateNotificationRequest) (dto.NotificationResponse, error)
	GetAll(ctx context.Context) (dto.GetNotificationsResponse, error)
	ForUser(ctx context.Context, userID string) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Notification
	cfg   *config.Config
	otel  otel.Otel
	kafka kafka.Client
}

func New(repo repository.Notification, cfg *config.Config, otl otel.Otel, kafkaClient kafka.Client) Notification {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		otel:  otl,
		kafka: kafkaClient,
	}
}

// Create appends the notification and, when the broker is enabled, publishes
// it to the notification topic. Publishing is fire-and-forget; a broker
// failure never fails the create.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateNotificationRequest) (res dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification := req.ToModel()

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create notification")

		return res, fmt.Errorf("failed to create notification: %w", err)
	}

	if s.cfg.Kafka.Enable {
		go func() {
			c := context.WithoutCancel(ctx)

			message := kafka.Message{Key: notification.ID, Value: notification}
			if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, message); err != nil {
				log.Error().Err(err).Str("notification_id", notification.ID).Msg("failed to publish notification")
			}
		}()
	}

	res.FromModel(notification)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.FromModels(s.repo.GetAll(ctx))

	return res, nil
}

func (s *serviceImpl) ForUser(ctx context.Context, userID string) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ForUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.FromModels(s.repo.GetForUser(ctx, userID))

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification, found := s.repo.GetByID(ctx, id)
	if !found {
		return failure.NotFound("notification not found")
	}

	notification.Read = true

	if err = s.repo.Update(ctx, notification); err != nil {
		log.Error().Err(err).Str("notification_id", id).Msg("failed to mark notification as read")

		return fmt.Errorf("failed to mark notification as read: %w", err)
	}

	return nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"club/infras/otel"
	"club/internal/domains/notification/model"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/store"
	"context"
	"fmt"
)

type Notification interface {
	GetAll(ctx context.Context) []model.Notification
	GetByID(ctx context.Context, id string) (model.Notification, bool)
	GetForUser(ctx context.Context, userID string) []model.Notification
	Insert(ctx context.Context, notification model.Notification) error
	Update(ctx context.Context, notification model.Notification) error
}

type repositoryImpl struct {
	notifications store.Collection[model.Notification]
}

func New(kvStore kv.KV, otl otel.Otel) Notification {
	return &repositoryImpl{
		notifications: store.NewCollection[model.Notification](model.EntityName, constant.StoreKeyNotifications, kvStore, otl),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) []model.Notification {
	return r.notifications.All(ctx)
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Notification, bool) {
	for _, notification := range r.notifications.All(ctx) {
		if notification.ID == id {
			return notification, true
		}
	}

	return model.Notification{}, false
}

// GetForUser returns the user's own notifications plus every broadcast.
func (r *repositoryImpl) GetForUser(ctx context.Context, userID string) []model.Notification {
	records := r.notifications.All(ctx)

	matched := make([]model.Notification, 0, len(records))
	for _, notification := range records {
		if notification.UserID == userID || notification.UserID == constant.NotificationAudienceAll {
			matched = append(matched, notification)
		}
	}

	return matched
}

func (r *repositoryImpl) Insert(ctx context.Context, notification model.Notification) error {
	records := append(r.notifications.All(ctx), notification)

	return r.notifications.Replace(ctx, records)
}

func (r *repositoryImpl) Update(ctx context.Context, notification model.Notification) error {
	records := r.notifications.All(ctx)
	for i := range records {
		if records[i].ID == notification.ID {
			records[i] = notification

			return r.notifications.Replace(ctx, records)
		}
	}

	return fmt.Errorf("notification (%s) not in collection", notification.ID)
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"club/infras/otel"
	"club/internal/domains/event/model"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/store"
	"context"
	"fmt"
)

type Event interface {
	GetAll(ctx context.Context) []model.Event
	GetByID(ctx context.Context, id string) (model.Event, bool)
	Insert(ctx context.Context, event model.Event) error
	Update(ctx context.Context, event model.Event) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	events store.Collection[model.Event]
}

func New(kvStore kv.KV, otl otel.Otel) Event {
	return &repositoryImpl{
		events: store.NewCollection[model.Event](model.EntityName, constant.StoreKeyEvents, kvStore, otl),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) []model.Event {
	return r.events.All(ctx)
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Event, bool) {
	for _, event := range r.events.All(ctx) {
		if event.ID == id {
			return event, true
		}
	}

	return model.Event{}, false
}

func (r *repositoryImpl) Insert(ctx context.Context, event model.Event) error {
	records := append(r.events.All(ctx), event)

	return r.events.Replace(ctx, records)
}

func (r *repositoryImpl) Update(ctx context.Context, event model.Event) error {
	records := r.events.All(ctx)
	for i := range records {
		if records[i].ID == event.ID {
			records[i] = event

			return r.events.Replace(ctx, records)
		}
	}

	return fmt.Errorf("event (%s) not in collection", event.ID)
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	records := r.events.All(ctx)

	kept := make([]model.Event, 0, len(records))
	for _, event := range records {
		if event.ID != id {
			kept = append(kept, event)
		}
	}

	return r.events.Replace(ctx, kept)
}

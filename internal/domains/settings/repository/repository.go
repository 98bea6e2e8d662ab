package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"club/infras/otel"
	"club/internal/domains/settings/model"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/store"
	"context"
)

type Settings interface {
	Get(ctx context.Context) (model.Settings, bool)
	Put(ctx context.Context, settings model.Settings) error
}

type repositoryImpl struct {
	settings store.Document[model.Settings]
}

func New(kvStore kv.KV, otl otel.Otel) Settings {
	return &repositoryImpl{
		settings: store.NewDocument[model.Settings](model.EntityName, constant.StoreKeySettings, kvStore, otl),
	}
}

func (r *repositoryImpl) Get(ctx context.Context) (model.Settings, bool) {
	return r.settings.Get(ctx)
}

func (r *repositoryImpl) Put(ctx context.Context, settings model.Settings) error {
	return r.settings.Put(ctx, settings)
}

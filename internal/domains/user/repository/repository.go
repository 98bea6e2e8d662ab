package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"club/infras/otel"
	"club/internal/domains/user/model"
	"club/shared/constant"
	"club/shared/kv"
	"club/shared/store"
	"context"
	"fmt"
)

type User interface {
	GetAll(ctx context.Context) []model.User
	GetByID(ctx context.Context, id string) (model.User, bool)
	GetByEmail(ctx context.Context, email string) (model.User, bool)
	Insert(ctx context.Context, user model.User) error
	Update(ctx context.Context, user model.User) error
	Delete(ctx context.Context, id string) error
	GetSession(ctx context.Context) (model.User, bool)
	PutSession(ctx context.Context, user model.User) error
	DeleteSession(ctx context.Context) error
}

type repositoryImpl struct {
	users   store.Collection[model.User]
	session store.Document[model.User]
}

func New(kvStore kv.KV, otl otel.Otel) User {
	return &repositoryImpl{
		users:   store.NewCollection[model.User](model.EntityName, constant.StoreKeyUsers, kvStore, otl),
		session: store.NewDocument[model.User]("session", constant.StoreKeyCurrentUser, kvStore, otl),
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) []model.User {
	return r.users.All(ctx)
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, bool) {
	for _, user := range r.users.All(ctx) {
		if user.ID == id {
			return user, true
		}
	}

	return model.User{}, false
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, bool) {
	for _, user := range r.users.All(ctx) {
		if user.Email == email {
			return user, true
		}
	}

	return model.User{}, false
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) error {
	records := append(r.users.All(ctx), user)

	return r.users.Replace(ctx, records)
}

// Update replaces the record whose id matches, leaving the rest untouched.
func (r *repositoryImpl) Update(ctx context.Context, user model.User) error {
	records := r.users.All(ctx)
	for i := range records {
		if records[i].ID == user.ID {
			records[i] = user

			return r.users.Replace(ctx, records)
		}
	}

	return fmt.Errorf("user (%s) not in collection", user.ID)
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) error {
	records := r.users.All(ctx)

	kept := make([]model.User, 0, len(records))
	for _, user := range records {
		if user.ID != id {
			kept = append(kept, user)
		}
	}

	return r.users.Replace(ctx, kept)
}

func (r *repositoryImpl) GetSession(ctx context.Context) (model.User, bool) {
	return r.session.Get(ctx)
}

func (r *repositoryImpl) PutSession(ctx context.Context, user model.User) error {
	return r.session.Put(ctx, user)
}

func (r *repositoryImpl) DeleteSession(ctx context.Context) error {
	return r.session.Delete(ctx)
}

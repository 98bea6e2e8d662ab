package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club/infras/otel/mocks"
	eventRepo "club/internal/domains/event/repository"
	settingsRepo "club/internal/domains/settings/repository"
	userModel "club/internal/domains/user/model"
	userRepo "club/internal/domains/user/repository"
	"club/internal/seed"
	"club/shared/constant"
	"club/shared/kv"
)

func TestSeed_FreshStore(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, seed.New(backing, mocks.NewOtel()).Run(ctx))

	users := userRepo.New(backing, mocks.NewOtel()).GetAll(ctx)
	require.Len(t, users, 3)
	assert.Equal(t, constant.RoleOwner, users[0].Role)
	assert.Equal(t, "owner@club.com", users[0].Email)

	events := eventRepo.New(backing, mocks.NewOtel()).GetAll(ctx)
	require.Len(t, events, 3)
	assert.Equal(t, "Friday Night Party", events[0].Title)
	assert.Equal(t, 45, events[0].Booked)

	settings, found := settingsRepo.New(backing, mocks.NewOtel()).Get(ctx)
	require.True(t, found)
	assert.Equal(t, "Elite Club", settings.ClubName)

	// empty collections are materialized so seeding never reruns
	bookings, err := backing.Get(ctx, constant.StoreKeyBookings)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(bookings))

	notifications, err := backing.Get(ctx, constant.StoreKeyNotifications)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(notifications))
}

func TestSeed_DoesNotOverwriteExistingData(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	repo := userRepo.New(backing, mocks.NewOtel())
	require.NoError(t, repo.Insert(ctx, userModel.User{ID: "custom", Email: "me@club.com"}))

	require.NoError(t, seed.New(backing, mocks.NewOtel()).Run(ctx))

	users := repo.GetAll(ctx)
	require.Len(t, users, 1, "present users collection stays untouched")
	assert.Equal(t, "custom", users[0].ID)

	// the rest was still seeded
	events := eventRepo.New(backing, mocks.NewOtel()).GetAll(ctx)
	assert.Len(t, events, 3)
}

func TestSeed_Idempotent(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, seed.New(backing, mocks.NewOtel()).Run(ctx))
	require.NoError(t, seed.New(backing, mocks.NewOtel()).Run(ctx))

	users := userRepo.New(backing, mocks.NewOtel()).GetAll(ctx)
	assert.Len(t, users, 3)
}

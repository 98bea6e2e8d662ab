package kv_test

import (
	"context"
	"testing"

	"club/shared/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_GetAbsentKey(t *testing.T) {
	store := kv.NewMemory()

	blob, err := store.Get(context.Background(), "club_events")

	assert.Nil(t, blob)
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestMemoryKV_SetThenGet(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "club_events", []byte(`[{"id":"1"}]`)))

	blob, err := store.Get(ctx, "club_events")

	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), blob)
}

func TestMemoryKV_GetReturnsCopy(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "club_settings", []byte(`{"clubName":"Elite Club"}`)))

	blob, err := store.Get(ctx, "club_settings")
	require.NoError(t, err)

	blob[0] = 'X'

	again, err := store.Get(ctx, "club_settings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"clubName":"Elite Club"}`), again)
}

func TestMemoryKV_SetMulti(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	err := store.SetMulti(ctx, map[string][]byte{
		"club_bookings": []byte(`[]`),
		"club_events":   []byte(`[{"id":"1","booked":3}]`),
	})
	require.NoError(t, err)

	bookings, err := store.Get(ctx, "club_bookings")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), bookings)

	events, err := store.Get(ctx, "club_events")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1","booked":3}]`), events)
}

func TestMemoryKV_Delete(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "club_current_user", []byte(`{"id":"1"}`)))
	require.NoError(t, store.Delete(ctx, "club_current_user"))

	_, err := store.Get(ctx, "club_current_user")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "club_current_user"))
}

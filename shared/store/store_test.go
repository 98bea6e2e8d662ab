package store_test

import (
	"context"
	"errors"
	"testing"

	"club/infras/otel/mocks"
	"club/shared/kv"
	kvMocks "club/shared/kv/mocks"
	"club/shared/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection_AllAbsentKeyIsEmpty(t *testing.T) {
	coll := store.NewCollection[member]("member", "club_users", kv.NewMemory(), mocks.NewOtel())

	records := coll.All(context.Background())

	assert.Empty(t, records)
}

func TestCollection_ReplaceThenAll(t *testing.T) {
	coll := store.NewCollection[member]("member", "club_users", kv.NewMemory(), mocks.NewOtel())
	ctx := context.Background()

	err := coll.Replace(ctx, []member{{ID: "1", Name: "John Doe"}, {ID: "2", Name: "Jane Doe"}})
	require.NoError(t, err)

	records := coll.All(ctx)

	require.Len(t, records, 2)
	assert.Equal(t, "John Doe", records[0].Name)
	assert.Equal(t, "2", records[1].ID)
}

func TestCollection_MalformedBlobDegradesToEmpty(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, backing.Set(ctx, "club_users", []byte(`{not json`)))

	coll := store.NewCollection[member]("member", "club_users", backing, mocks.NewOtel())

	assert.Empty(t, coll.All(ctx))
}

func TestCollection_StoreFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKV := kvMocks.NewMockKV(ctrl)
	mockKV.EXPECT().
		Get(gomock.Any(), "club_users").
		Return(nil, errors.New("connection refused"))

	coll := store.NewCollection[member]("member", "club_users", mockKV, mocks.NewOtel())

	assert.Empty(t, coll.All(context.Background()))
}

func TestCollection_ReplaceWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKV := kvMocks.NewMockKV(ctrl)
	mockKV.EXPECT().
		Set(gomock.Any(), "club_users", gomock.Any()).
		Return(errors.New("connection refused"))

	coll := store.NewCollection[member]("member", "club_users", mockKV, mocks.NewOtel())

	err := coll.Replace(context.Background(), []member{{ID: "1"}})

	assert.Error(t, err)
}

func TestCollection_Exists(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	coll := store.NewCollection[member]("member", "club_users", backing, mocks.NewOtel())

	assert.False(t, coll.Exists(ctx))

	require.NoError(t, coll.Replace(ctx, []member{}))

	assert.True(t, coll.Exists(ctx))
}

func TestDocument_GetAbsent(t *testing.T) {
	doc := store.NewDocument[member]("session", "club_current_user", kv.NewMemory(), mocks.NewOtel())

	_, ok := doc.Get(context.Background())

	assert.False(t, ok)
}

func TestDocument_PutGetDelete(t *testing.T) {
	doc := store.NewDocument[member]("session", "club_current_user", kv.NewMemory(), mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, doc.Put(ctx, member{ID: "1", Name: "John Doe"}))

	record, ok := doc.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "John Doe", record.Name)

	require.NoError(t, doc.Delete(ctx))

	_, ok = doc.Get(ctx)
	assert.False(t, ok)
}

func TestDocument_MalformedBlobIsAbsent(t *testing.T) {
	backing := kv.NewMemory()
	ctx := context.Background()

	require.NoError(t, backing.Set(ctx, "club_current_user", []byte(`[]`)))

	doc := store.NewDocument[member]("session", "club_current_user", backing, mocks.NewOtel())

	_, ok := doc.Get(ctx)
	assert.False(t, ok)
}

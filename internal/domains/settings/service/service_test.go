package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club/infras/otel/mocks"
	"club/internal/domains/settings/model/dto"
	"club/internal/domains/settings/repository"
	"club/internal/domains/settings/service"
	"club/shared/kv"
)

func newFixture(t *testing.T) (service.Settings, repository.Settings) {
	t.Helper()

	repo := repository.New(kv.NewMemory(), mocks.NewOtel())

	return service.New(repo, mocks.NewOtel()), repo
}

func TestSettingsService_GetFallsBackToDefaults(t *testing.T) {
	svc, _ := newFixture(t)

	res, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Elite Club", res.ClubName)
	assert.Equal(t, "#6366f1", res.Theme.PrimaryColor)
	assert.Equal(t, "#8b5cf6", res.Theme.SecondaryColor)
	assert.False(t, res.MaintenanceMode)
}

func TestSettingsService_Update(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	clubName := "Neon Club"
	primary := "#ff0099"

	res, err := svc.Update(ctx, dto.UpdateSettingsRequest{
		ClubName: &clubName,
		Theme:    &dto.UpdateThemeRequest{PrimaryColor: &primary},
	})
	require.NoError(t, err)
	assert.Equal(t, "Neon Club", res.ClubName)
	assert.Equal(t, "#ff0099", res.Theme.PrimaryColor)
	assert.Equal(t, "#8b5cf6", res.Theme.SecondaryColor, "unpatched field untouched")

	stored, found := repo.Get(ctx)
	require.True(t, found)
	assert.Equal(t, "Neon Club", stored.ClubName)
}

func TestSettingsService_EmptyPatchIsNoOp(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	after, err := svc.Update(ctx, dto.UpdateSettingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestSettingsService_MaintenanceStatus(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	enabled, _ := svc.MaintenanceStatus(ctx)
	assert.False(t, enabled)

	on := true
	message := "Back at midnight."

	_, err := svc.Update(ctx, dto.UpdateSettingsRequest{
		MaintenanceMode:    &on,
		MaintenanceMessage: &message,
	})
	require.NoError(t, err)

	enabled, got := svc.MaintenanceStatus(ctx)
	assert.True(t, enabled)
	assert.Equal(t, "Back at midnight.", got)
}

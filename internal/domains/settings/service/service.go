package service

import (
	"club/infras/otel"
	"club/internal/domains/settings/model"
	"club/internal/domains/settings/model/dto"
	"club/internal/domains/settings/repository"
	"club/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error)
	MaintenanceStatus(ctx context.Context) (enabled bool, message string)
}

type serviceImpl struct {
	repo repository.Settings
	otel otel.Otel
}

func New(repo repository.Settings, otl otel.Otel) Settings {
	return &serviceImpl{
		repo: repo,
		otel: otl,
	}
}

// Get returns the stored settings, or the defaults when nothing is stored.
func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.FromModel(s.current(ctx))

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	updated := req.Apply(s.current(ctx))

	if err = s.repo.Put(ctx, updated); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return res, fmt.Errorf("failed to update settings: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

// MaintenanceStatus feeds the maintenance middleware. It never errors; an
// unreadable settings document behaves like the defaults.
func (s *serviceImpl) MaintenanceStatus(ctx context.Context) (bool, string) {
	settings := s.current(ctx)

	return settings.MaintenanceMode, settings.MaintenanceMessage
}

func (s *serviceImpl) current(ctx context.Context) model.Settings {
	settings, found := s.repo.Get(ctx)
	if !found {
		return model.Default()
	}

	return settings
}

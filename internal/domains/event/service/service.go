package service

import (
	"club/config"
	"club/infras/otel"
	"club/infras/s3"
	"club/internal/domains/event/model/dto"
	"club/internal/domains/event/repository"
	"club/shared/constant"
	"club/shared/failure"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const imageDirectory = "events"

type Event interface {
	GetAll(ctx context.Context) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
	SetImage(ctx context.Context, id, url string) error
	UploadImage(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
	Summary(ctx context.Context) (dto.EventSummaryResponse, error)
}

type serviceImpl struct {
	repo repository.Event
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.Event, cfg *config.Config, otl otel.Otel, s3Client s3.S3) Event {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
		s3:   s3Client,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.FromModels(s.repo.GetAll(ctx))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, found := s.repo.GetByID(ctx, id)
	if !found {
		return res, failure.NotFound("event not found")
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	event := req.ToModel()

	if err = s.repo.Insert(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return res, fmt.Errorf("failed to create event: %w", err)
	}

	res.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	event, found := s.repo.GetByID(ctx, id)
	if !found {
		log.Error().Str("event_id", id).Msg("event not found")

		return failure.NotFound("event not found")
	}

	if req.Capacity != nil && *req.Capacity < event.Booked {
		return failure.BadRequestFromString("capacity cannot drop below the booked count")
	}

	if err = s.repo.Update(ctx, req.Apply(event)); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, found := s.repo.GetByID(ctx, id)
	if !found {
		return failure.NotFound("event not found")
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	if s.cfg.External.S3.Enable && event.Image != constant.Empty {
		go func() {
			c := context.WithoutCancel(ctx)

			objectName := s.s3.GetObjectNameFromURL(event.Image)
			if err := s.s3.DeleteFile(c, constant.Empty, objectName); err != nil {
				log.Error().Err(err).Str("object", objectName).Msg("failed to delete event image")
			}
		}()
	}

	return nil
}

func (s *serviceImpl) SetImage(ctx context.Context, id, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, found := s.repo.GetByID(ctx, id)
	if !found {
		return failure.NotFound("event not found")
	}

	event.Image = url

	if err = s.repo.Update(ctx, event); err != nil {
		log.Error().Err(err).Msg("failed to set event image")

		return fmt.Errorf("failed to set event image: %w", err)
	}

	return nil
}

// UploadImage pushes the file to object storage and records the resulting URL
// on the event.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.cfg.External.S3.Enable {
		return constant.Empty, failure.BadRequestFromString("image upload is not enabled")
	}

	if _, found := s.repo.GetByID(ctx, id); !found {
		return constant.Empty, failure.NotFound("event not found")
	}

	fileName := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	url, err = s.s3.UploadFile(ctx, imageDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload event image")

		return constant.Empty, fmt.Errorf("failed to upload event image: %w", err)
	}

	if err = s.SetImage(ctx, id, url); err != nil {
		return constant.Empty, err
	}

	return url, nil
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.EventSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	events := s.repo.GetAll(ctx)

	for _, event := range events {
		if event.Status != constant.EventStatusActive {
			continue
		}

		res.ActiveEvents++
		res.TotalCapacity += event.Capacity
		res.TotalBooked += event.Booked
	}

	if res.ActiveEvents > 0 {
		res.AverageCapacity = float64(res.TotalCapacity) / float64(res.ActiveEvents)
	}

	return res, nil
}

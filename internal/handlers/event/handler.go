package event

import (
	"club/infras/otel"
	"club/internal/domains/event/model/dto"
	"club/internal/domains/event/service"
	"club/shared/constant"
	"club/shared/validator"
	"club/transport/http/middleware"
	"club/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service     service.Event
	otel        otel.Otel
	authRole    middleware.AuthRole
	maintenance middleware.Maintenance
}

func New(service service.Event, otl otel.Otel, authRole middleware.AuthRole, maintenance middleware.Maintenance) Handler {
	return Handler{
		service:     service,
		otel:        otl,
		authRole:    authRole,
		maintenance: maintenance,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Use(handler.maintenance.Guard)

		routerGroup.Get("/", handler.GetEvents)
		routerGroup.With(handler.authRole.Auth, handler.authRole.RequireRoles(constant.RoleOwner)).
			Get("/summary", handler.GetSummary)
		routerGroup.Get("/{id}", handler.GetEventByID)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.authRole.Auth)
			protected.Use(handler.authRole.RequireRoles(constant.RoleOwner, constant.RoleAdmin))

			protected.Post("/", handler.CreateEvent)
			protected.Patch("/{id}", handler.UpdateEvent)
			protected.Delete("/{id}", handler.DeleteEvent)
			protected.Put("/{id}/image", handler.UploadEventImage)
		})
	})
}

// GetEvents retrieves every event.
// @Summary Get all events
// @Tags Event
// @Produce json
// @Success 200 {object} response.Data[dto.GetEventsResponse] "List of events"
// @Failure 503 {object} response.Error
// @Router /v1/events [get]
func (handler *Handler) GetEvents(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetEventByID retrieves an event by id.
// @Summary Get an event by ID
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[dto.EventResponse] "Event details"
// @Failure 404 {object} response.Error
// @Router /v1/events/{id} [get]
func (handler *Handler) GetEventByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateEvent creates an event.
// @Summary Create an event
// @Description Create an event. The booked count starts at zero and the status at active regardless of input.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} response.Data[dto.EventResponse] "Event created"
// @Failure 400 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Event created: " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateEvent patches an event.
// @Summary Update an event
// @Description Apply a field-level patch to an event. Omitted fields stay untouched; booked and status are not patchable.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Update Event Request"
// @Success 200 {object} response.Message "Event updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateEventRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Event updated successfully")
}

// DeleteEvent deletes an event.
// @Summary Delete an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 404 {object} response.Error
// @Router /v1/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Event deleted successfully")
}

// UploadEventImage uploads an event image and records its URL.
// @Summary Upload an event image
// @Description Upload an image file to object storage and set it on the event.
// @Tags Event
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Event ID"
// @Param file formData file true "Image file"
// @Success 200 {object} response.Data[string] "Image URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/events/{id}/image [put]
// @Security BearerAuth
func (handler *Handler) UploadEventImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadEventImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, err)

		return
	}

	file, fileHeader, err := request.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(writer, err)

		return
	}
	defer file.Close()

	url, err := handler.service.UploadImage(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload event image")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, url)
}

// GetSummary returns the owner-dashboard aggregate.
// @Summary Event summary
// @Description Active-event count plus capacity totals for the owner dashboard.
// @Tags Event
// @Produce json
// @Success 200 {object} response.Data[dto.EventSummaryResponse] "Summary"
// @Router /v1/events/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	res, err := handler.service.Summary(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

package notification

import (
	"club/infras/otel"
	"club/internal/domains/notification/model/dto"
	"club/internal/domains/notification/service"
	"club/shared/constant"
	"club/shared/failure"
	"club/shared/validator"
	"club/transport/http/middleware"
	"club/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Notification
	otel     otel.Otel
	authRole middleware.AuthRole
}

func New(service service.Notification, otl otel.Otel, authRole middleware.AuthRole) Handler {
	return Handler{
		service:  service,
		otel:     otl,
		authRole: authRole,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)

		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner, constant.RoleAdmin)).
			Post("/", handler.CreateNotification)
		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner, constant.RoleAdmin)).
			Get("/", handler.GetNotifications)
		routerGroup.Get("/mynotifications", handler.GetMyNotifications)
		routerGroup.Post("/{id}/read", handler.MarkNotificationRead)
	})
}

// CreateNotification sends a notification to one user or to everyone.
// @Summary Create a notification
// @Description Create a notification addressed to a user id or to "all" for a broadcast.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} response.Data[dto.NotificationResponse] "Notification created"
// @Failure 400 {object} response.Error
// @Router /v1/notifications [post]
// @Security BearerAuth
func (handler *Handler) CreateNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNotification")
	defer scope.End()

	req := dto.CreateNotificationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create notification")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Notification created: " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetNotifications retrieves every notification.
// @Summary Get all notifications
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "List of notifications"
// @Failure 403 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMyNotifications retrieves the user's notifications plus broadcasts.
// @Summary Get my notifications
// @Description Return notifications addressed to the authenticated user or to "all".
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "List of the user's notifications"
// @Failure 401 {object} response.Error
// @Router /v1/notifications/mynotifications [get]
// @Security BearerAuth
func (handler *Handler) GetMyNotifications(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyNotifications")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ForUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user notifications")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// MarkNotificationRead marks a notification as read.
// @Summary Mark a notification as read
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Failure 404 {object} response.Error
// @Router /v1/notifications/{id}/read [post]
// @Security BearerAuth
func (handler *Handler) MarkNotificationRead(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkNotificationRead")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification as read")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Notification marked as read")
}

package booking

import (
	"club/infras/otel"
	"club/internal/domains/booking/model/dto"
	"club/internal/domains/booking/service"
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
	service     service.Booking
	otel        otel.Otel
	authRole    middleware.AuthRole
	maintenance middleware.Maintenance
}

func New(service service.Booking, otl otel.Otel, authRole middleware.AuthRole, maintenance middleware.Maintenance) Handler {
	return Handler{
		service:     service,
		otel:        otl,
		authRole:    authRole,
		maintenance: maintenance,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)
		routerGroup.Use(handler.maintenance.Guard)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner, constant.RoleAdmin)).
			Get("/", handler.GetBookings)
		routerGroup.Get("/mybookings", handler.GetMyBookings)
		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner)).
			Get("/revenue", handler.GetRevenue)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
	})
}

// CreateBooking books places on an event.
// @Summary Create a booking
// @Description Book places on an event. The booking and the event's booked count are written atomically.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	// members can only book for themselves
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleUser && req.UserID != userID {
		err := failure.Forbidden("cannot book on behalf of another user")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created: " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings retrieves every booking.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 403 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetMyBookings retrieves the authenticated user's bookings.
// @Summary Get my bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of the user's bookings"
// @Failure 401 {object} response.Error
// @Router /v1/bookings/mybookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == constant.Empty {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetUserBookings(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelBooking flips a booking to cancelled.
// @Summary Cancel a booking
// @Description Cancel a booking. The event's booked count is not decremented.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking cancelled successfully")
}

// GetRevenue returns the revenue aggregate over confirmed bookings.
// @Summary Booking revenue
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.RevenueResponse] "Revenue"
// @Failure 403 {object} response.Error
// @Router /v1/bookings/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	res, err := handler.service.Revenue(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

package settings

import (
	"club/infras/otel"
	"club/internal/domains/settings/model/dto"
	"club/internal/domains/settings/service"
	"club/shared/constant"
	"club/shared/validator"
	"club/transport/http/middleware"
	"club/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Settings
	otel     otel.Otel
	authRole middleware.AuthRole
}

func New(service service.Settings, otl otel.Otel, authRole middleware.AuthRole) Handler {
	return Handler{
		service:  service,
		otel:     otl,
		authRole: authRole,
	}
}

// Settings stay readable during maintenance so clients can render the
// maintenance message and theme.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.With(handler.authRole.Auth, handler.authRole.RequireRoles(constant.RoleOwner)).
			Patch("/", handler.UpdateSettings)
	})
}

// GetSettings returns the club settings.
// @Summary Get settings
// @Description Return the club settings singleton, or the defaults when nothing is stored.
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Data[dto.SettingsResponse] "Settings"
// @Router /v1/settings [get]
func (handler *Handler) GetSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateSettings patches the club settings.
// @Summary Update settings
// @Description Apply a field-level patch to the settings singleton. Omitted fields stay untouched.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Data[dto.SettingsResponse] "Updated settings"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/settings [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

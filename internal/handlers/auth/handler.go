package auth

import (
	"club/infras/otel"
	"club/internal/domains/user/model/dto"
	"club/internal/domains/user/service"
	"club/shared/constant"
	"club/shared/validator"
	"club/transport/http/middleware"
	"club/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.User
	otel     otel.Otel
	authRole middleware.AuthRole
}

func New(service service.User, otl otel.Otel, authRole middleware.AuthRole) Handler {
	return Handler{
		service:  service,
		otel:     otl,
		authRole: authRole,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/refresh", handler.RefreshToken)
		routerGroup.With(handler.authRole.Auth).Post("/logout", handler.Logout)
		routerGroup.With(handler.authRole.Auth).Get("/me", handler.CurrentUser)
	})
}

// Login authenticates a member and opens a session.
// @Summary Log in
// @Description Authenticate with email and password, open the session and receive a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Logged in"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("User logged in: " + res.User.ID)

	response.WithJSON(writer, http.StatusOK, res)
}

// RefreshToken exchanges a refresh token for a new pair.
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a fresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse] "Tokens refreshed"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Logout closes the active session.
// @Summary Log out
// @Description Delete the session document.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	if err := handler.service.Logout(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Logged out successfully")
}

// CurrentUser returns the session holder.
// @Summary Current user
// @Description Return the user stored in the session document.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "Current user"
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) CurrentUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentUser")
	defer scope.End()

	res, err := handler.service.CurrentUser(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

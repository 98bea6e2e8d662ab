package user

import (
	"club/infras/otel"
	"club/internal/domains/user/model/dto"
	"club/internal/domains/user/service"
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
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Use(handler.authRole.Auth)

		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner, constant.RoleAdmin)).
			Get("/", handler.GetUsers)
		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner, constant.RoleAdmin)).
			Get("/{id}", handler.GetUserByID)
		routerGroup.Patch("/{id}", handler.UpdateUser)
		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner)).
			Post("/admins", handler.AddAdmin)
		routerGroup.With(handler.authRole.RequireRoles(constant.RoleOwner)).
			Delete("/admins/{id}", handler.RemoveAdmin)
	})
}

// GetUsers retrieves every user record.
// @Summary Get all users
// @Description Retrieve all registered users, passwords stripped.
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.GetUsersResponse] "List of users"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetUserByID retrieves a user by id.
// @Summary Get a user by ID
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.UserResponse] "User details"
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetUserByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
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

// UpdateUser patches a user's profile fields.
// @Summary Update a user
// @Description Apply a field-level patch to a user record. Omitted fields stay untouched.
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "Update User Request"
// @Success 200 {object} response.Message "User updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	// members can only edit their own profile
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleUser && id != userID {
		err := failure.Forbidden("cannot update another user's profile")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateUserRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update user")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "User updated successfully")
}

// AddAdmin creates an admin account.
// @Summary Add an admin
// @Description Create a new user with the admin role.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} response.Data[dto.UserResponse] "Admin created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/users/admins [post]
// @Security BearerAuth
func (handler *Handler) AddAdmin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddAdmin")
	defer scope.End()

	req := dto.CreateAdminRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AddAdmin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add admin")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Admin created: " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// RemoveAdmin deletes an admin account.
// @Summary Remove an admin
// @Tags User
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Message "Admin removed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/admins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveAdmin(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveAdmin")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.RemoveAdmin(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove admin")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Admin removed successfully")
}

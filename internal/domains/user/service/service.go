package service

import (
	"club/infras/jwt"
	"club/infras/otel"
	"club/internal/domains/user/model/dto"
	"club/internal/domains/user/repository"
	"club/shared/constant"
	"club/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type User interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (dto.UserResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	GetAll(ctx context.Context) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	AddAdmin(ctx context.Context, req dto.CreateAdminRequest) (dto.UserResponse, error)
	RemoveAdmin(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.User
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(repo repository.User, otl otel.Otel, jwtService jwt.JWT) User {
	return &serviceImpl{
		repo:       repo,
		otel:       otl,
		jwtService: jwtService,
	}
}

// Login matches credentials against the stored record. Credentials are
// compared verbatim; the match failure never says which half was wrong.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found := s.repo.GetByEmail(ctx, req.Email)
	if !found {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized("invalid email or password")
	}

	if user.Password != req.Password {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password")
	}

	if err = s.repo.PutSession(ctx, user.Sanitized()); err != nil {
		log.Error().Err(err).Msg("failed to persist session")

		return res, fmt.Errorf("failed to persist session: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(user.Sanitized(), tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteSession(ctx); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (s *serviceImpl) CurrentUser(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found := s.repo.GetSession(ctx)
	if !found {
		return res, failure.Unauthorized("no active session")
	}

	res.FromModel(user.Sanitized())

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	users := s.repo.GetAll(ctx)
	for i := range users {
		users[i] = users[i].Sanitized()
	}

	res.FromModels(users)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found := s.repo.GetByID(ctx, id)
	if !found {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user.Sanitized())

	return res, nil
}

// Update applies a field-level patch. When the patched user holds the active
// session, the session document is rewritten to match.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, found := s.repo.GetByID(ctx, id)
	if !found {
		log.Error().Str("user_id", id).Msg("user not found")

		return failure.NotFound("user not found")
	}

	if req.Email != nil && *req.Email != user.Email {
		if existing, taken := s.repo.GetByEmail(ctx, *req.Email); taken && existing.ID != id {
			return failure.Conflict("email already registered")
		}
	}

	updated := req.Apply(user)

	if err = s.repo.Update(ctx, updated); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	if session, active := s.repo.GetSession(ctx); active && session.ID == id {
		if err = s.repo.PutSession(ctx, updated.Sanitized()); err != nil {
			log.Error().Err(err).Msg("failed to refresh session after update")

			return fmt.Errorf("failed to refresh session after update: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) AddAdmin(ctx context.Context, req dto.CreateAdminRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, taken := s.repo.GetByEmail(ctx, req.Email); taken {
		return res, failure.Conflict("email already registered")
	}

	admin := req.ToModel()

	if err = s.repo.Insert(ctx, admin); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return res, fmt.Errorf("failed to create admin: %w", err)
	}

	res.FromModel(admin.Sanitized())

	return res, nil
}

func (s *serviceImpl) RemoveAdmin(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found := s.repo.GetByID(ctx, id)
	if !found {
		return failure.NotFound("admin not found")
	}

	if user.Role != constant.RoleAdmin {
		return failure.BadRequestFromString("user is not an admin")
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to remove admin")

		return fmt.Errorf("failed to remove admin: %w", err)
	}

	return nil
}

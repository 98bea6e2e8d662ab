package middleware

import (
	"club/infras/jwt"
	"club/infras/otel"
	"club/shared/constant"
	"club/shared/failure"
	"club/transport/http/response"
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/rs/zerolog/log"
)

// AuthRole validates JWT tokens and gates routes by role.
type AuthRole interface {
	Auth(http.Handler) http.Handler
	RequireRoles(roles ...string) func(http.Handler) http.Handler
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otl otel.Otel) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otl,
	}
}

// Auth validates the bearer token and stores the claims on the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty {
			err := failure.Unauthorized("Missing authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("Invalid authorization header format")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			err := failure.Unauthorized(message)
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if claims.UserID == constant.Empty || claims.Email == constant.Empty {
			log.Error().Msg("JWT claims are incomplete")

			response.WithError(writer, failure.Unauthorized("Invalid token claims"))

			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RequireRoles allows only the listed roles through. It must run after Auth.
func (m *authRoleImpl) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

			userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

			if !slices.Contains(roles, userRole) {
				err := failure.ForbiddenError

				scope.TraceError(err)
				scope.SetAttributes(map[string]any{
					"user_role":     userRole,
					"allowed_roles": roles,
				})
				scope.End()

				response.WithError(writer, err)

				return
			}

			scope.End()

			next.ServeHTTP(writer, request)
		})
	}
}

package middleware

import (
	settingsService "club/internal/domains/settings/service"
	"club/shared/constant"
	"club/shared/failure"
	"club/transport/http/response"
	"net/http"
)

// Maintenance returns 503 with the configured message while maintenance mode
// is enabled. Owners and admins pass through so they can turn it back off.
type Maintenance interface {
	Guard(http.Handler) http.Handler
}

type maintenanceImpl struct {
	settings settingsService.Settings
}

func NewMaintenanceMiddleware(settings settingsService.Settings) Maintenance {
	return &maintenanceImpl{
		settings: settings,
	}
}

func (m *maintenanceImpl) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		enabled, message := m.settings.MaintenanceStatus(ctx)
		if !enabled {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if role == constant.RoleOwner || role == constant.RoleAdmin {
			next.ServeHTTP(writer, request)

			return
		}

		if message == constant.Empty {
			response.WithError(writer, failure.MaintenanceError)

			return
		}

		response.WithError(writer, failure.ServiceUnavailable(message))
	})
}

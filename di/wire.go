//go:build wireinject
// +build wireinject

package di

import (
	"club/config"
	"club/infras/jwt"
	"club/infras/kafka"
	"club/infras/otel"
	"club/infras/s3"
	"club/internal/seed"
	"club/shared/kv"
	"club/transport/http"
	"club/transport/http/middleware"
	"club/transport/http/router"

	bookingRepository "club/internal/domains/booking/repository"
	bookingService "club/internal/domains/booking/service"
	eventRepository "club/internal/domains/event/repository"
	eventService "club/internal/domains/event/service"
	notificationRepository "club/internal/domains/notification/repository"
	notificationService "club/internal/domains/notification/service"
	settingsRepository "club/internal/domains/settings/repository"
	settingsService "club/internal/domains/settings/service"
	userRepository "club/internal/domains/user/repository"
	userService "club/internal/domains/user/service"

	authHandler "club/internal/handlers/auth"
	bookingHandler "club/internal/handlers/booking"
	eventHandler "club/internal/handlers/event"
	notificationHandler "club/internal/handlers/notification"
	settingsHandler "club/internal/handlers/settings"
	userHandler "club/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	jwt.New,
	s3.New,
	kafka.New,
	kv.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewMaintenanceMiddleware,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	userDomain,
	eventDomain,
	bookingDomain,
	settingsDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	eventHandler.New,
	bookingHandler.New,
	settingsHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSeeder() seed.Seeder {
	wire.Build(
		config.Get,
		otel.New,
		kv.New,
		seed.New,
	)

	return seed.Seeder{}
}

//go:build wireinject
// +build wireinject

package di

import (
	"dentsched/config"
	"dentsched/infras/jwt"
	"dentsched/infras/kafka"
	"dentsched/infras/otel"
	"dentsched/infras/postgres"
	"dentsched/infras/redis"
	"dentsched/shared/cache"
	"dentsched/transport/http"
	"dentsched/transport/http/middleware"
	"dentsched/transport/http/router"

	"github.com/google/wire"

	availabilityService "dentsched/internal/domains/availability/service"
	bookingRepository "dentsched/internal/domains/booking/repository"
	bookingService "dentsched/internal/domains/booking/service"
	exceptionRepository "dentsched/internal/domains/exception/repository"
	exceptionService "dentsched/internal/domains/exception/service"
	procedureRepository "dentsched/internal/domains/procedure/repository"
	procedureService "dentsched/internal/domains/procedure/service"
	scheduleRepository "dentsched/internal/domains/schedule/repository"
	scheduleService "dentsched/internal/domains/schedule/service"

	availabilityHandler "dentsched/internal/handlers/availability"
	bookingHandler "dentsched/internal/handlers/booking"
	exceptionHandler "dentsched/internal/handlers/exception"
	procedureHandler "dentsched/internal/handlers/procedure"
	scheduleHandler "dentsched/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	redis.NewLocker,
	kafka.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var procedureDomain = wire.NewSet(
	procedureRepository.New,
	procedureService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var exceptionDomain = wire.NewSet(
	exceptionRepository.New,
	exceptionService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var domains = wire.NewSet(
	procedureDomain,
	scheduleDomain,
	exceptionDomain,
	bookingDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	procedureHandler.New,
	scheduleHandler.New,
	exceptionHandler.New,
	bookingHandler.New,
	availabilityHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

// InitializeBookingService wires the booking service alone for the reminder worker.
func InitializeBookingService() bookingService.Booking {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		procedureRepository.New,
		bookingDomain,
	)

	return nil
}

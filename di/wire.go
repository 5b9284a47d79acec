//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"fete/config"
	"fete/infras/jwt"
	"fete/infras/kafka"
	"fete/infras/otel"
	"fete/infras/postgres"
	"fete/infras/redis"
	"fete/shared/cache"
	"fete/transport/http"
	"fete/transport/http/middleware"
	"fete/transport/http/router"

	availabilityRepository "fete/internal/domains/availability/repository"
	availabilityService "fete/internal/domains/availability/service"
	bookingRepository "fete/internal/domains/booking/repository"
	bookingService "fete/internal/domains/booking/service"
	messageRepository "fete/internal/domains/message/repository"
	messageService "fete/internal/domains/message/service"
	offeringRepository "fete/internal/domains/offering/repository"
	vendorRepository "fete/internal/domains/vendors/repository"
	vendorService "fete/internal/domains/vendors/service"

	availabilityHandler "fete/internal/handlers/availability"
	bookingHandler "fete/internal/handlers/booking"
	vendorHandler "fete/internal/handlers/vendors"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	offeringRepository.New,
)

var messageDomain = wire.NewSet(
	messageRepository.New,
	messageService.New,
)

var vendorDomain = wire.NewSet(
	vendorRepository.New,
	vendorService.New,
)

var domains = wire.NewSet(
	availabilityDomain,
	bookingDomain,
	messageDomain,
	vendorDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	bookingHandler.New,
	vendorHandler.New,
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

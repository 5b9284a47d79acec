// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"fete/config"
	"fete/infras/jwt"
	"fete/infras/kafka"
	"fete/infras/otel"
	"fete/infras/postgres"
	"fete/infras/redis"
	"fete/internal/domains/availability/repository"
	"fete/internal/domains/availability/service"
	repository2 "fete/internal/domains/booking/repository"
	service2 "fete/internal/domains/booking/service"
	repository5 "fete/internal/domains/message/repository"
	service3 "fete/internal/domains/message/service"
	repository4 "fete/internal/domains/offering/repository"
	repository3 "fete/internal/domains/vendors/repository"
	service4 "fete/internal/domains/vendors/service"
	"fete/internal/handlers/availability"
	"fete/internal/handlers/booking"
	"fete/internal/handlers/vendors"
	"fete/shared/cache"
	"fete/transport/http"
	"fete/transport/http/middleware"
	"fete/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	schedule := repository.New(connection, otelOtel)
	repositoryBooking := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceAvailability := service.New(schedule, repositoryBooking, configConfig, redisCache, otelOtel)
	jwtJWT := jwt.New(configConfig)
	auth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	handler := availability.New(serviceAvailability, auth, otelOtel)
	vendor := repository3.New(connection, otelOtel)
	offering := repository4.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service2.New(repositoryBooking, vendor, offering, configConfig, redisCache, kafkaClient, otelOtel)
	message := repository5.New(connection, otelOtel)
	serviceMessage := service3.New(message, repositoryBooking, otelOtel)
	bookingHandler := booking.New(serviceBooking, serviceMessage, auth, otelOtel)
	serviceVendor := service4.New(vendor, configConfig, redisCache, otelOtel)
	vendorsHandler := vendors.New(serviceVendor, otelOtel)
	domainHandlers := router.DomainHandlers{
		Availability: handler,
		Booking:      bookingHandler,
		Vendor:       vendorsHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, connection, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var availabilityDomain = wire.NewSet(repository.New, service.New)

var bookingDomain = wire.NewSet(repository2.New, service2.New, repository4.New)

var messageDomain = wire.NewSet(repository5.New, service3.New)

var vendorDomain = wire.NewSet(repository3.New, service4.New)

var domains = wire.NewSet(
	availabilityDomain,
	bookingDomain,
	messageDomain,
	vendorDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), availability.New, booking.New, vendors.New, router.New)

//go:build wireinject
// +build wireinject

package di

import (
	"ehotel/config"
	"ehotel/infras/jwt"
	"ehotel/infras/kafka"
	"ehotel/infras/otel"
	"ehotel/infras/postgres"
	"ehotel/infras/redis"
	"ehotel/internal/events"
	"ehotel/permissions"
	"ehotel/shared/cache"
	"ehotel/transport/http"
	"ehotel/transport/http/middleware"
	"ehotel/transport/http/router"

	"github.com/google/wire"

	customerRepository "ehotel/internal/domains/customer/repository"
	employeeRepository "ehotel/internal/domains/employee/repository"

	authService "ehotel/internal/domains/auth/service"
	authHandler "ehotel/internal/handlers/auth"

	hotelRepository "ehotel/internal/domains/hotel/repository"
	hotelService "ehotel/internal/domains/hotel/service"
	hotelHandler "ehotel/internal/handlers/hotel"

	roomRepository "ehotel/internal/domains/room/repository"
	roomService "ehotel/internal/domains/room/service"
	roomHandler "ehotel/internal/handlers/room"

	bookingRepository "ehotel/internal/domains/booking/repository"
	bookingService "ehotel/internal/domains/booking/service"
	bookingHandler "ehotel/internal/handlers/booking"

	rentingRepository "ehotel/internal/domains/renting/repository"
	rentingService "ehotel/internal/domains/renting/service"
	rentingHandler "ehotel/internal/handlers/renting"

	transactionRepository "ehotel/internal/domains/transaction/repository"
	transactionService "ehotel/internal/domains/transaction/service"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
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
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var authDomain = wire.NewSet(
	customerRepository.New,
	employeeRepository.New,
	authService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelRepository.NewChain,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var rentingDomain = wire.NewSet(
	rentingRepository.New,
	rentingService.New,
)

var transactionDomain = wire.NewSet(
	transactionRepository.New,
	transactionService.New,
)

var domains = wire.NewSet(
	authDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
	rentingDomain,
	transactionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	rentingHandler.New,
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

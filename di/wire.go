//go:build wireinject
// +build wireinject

package di

import (
	"tavolo/config"
	"tavolo/infras/kafka"
	"tavolo/infras/otel"
	"tavolo/infras/postgres"
	"tavolo/infras/redis"
	"tavolo/internal/jobs"
	"tavolo/shared/cache"
	"tavolo/transport/http"
	"tavolo/transport/http/middleware"
	"tavolo/transport/http/router"

	hoursRepository "tavolo/internal/domains/hours/repository"
	hoursService "tavolo/internal/domains/hours/service"
	reservationEvent "tavolo/internal/domains/reservation/event"
	reservationRepository "tavolo/internal/domains/reservation/repository"
	reservationService "tavolo/internal/domains/reservation/service"
	tableRepository "tavolo/internal/domains/table/repository"
	tableService "tavolo/internal/domains/table/service"

	hoursHandler "tavolo/internal/handlers/hours"
	reservationHandler "tavolo/internal/handlers/reservation"
	tableHandler "tavolo/internal/handlers/table"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var tableDomain = wire.NewSet(
	tableRepository.New,
	tableService.New,
)

var hoursDomain = wire.NewSet(
	hoursRepository.New,
	hoursService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationEvent.NewPublisher,
	reservationService.NewAvailability,
	reservationService.NewBooking,
)

var domains = wire.NewSet(
	tableDomain,
	hoursDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	tableHandler.New,
	hoursHandler.New,
	reservationHandler.New,
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

func InitializeJobs() *jobs.HorizonExtender {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		sharedHelpers,
		hoursDomain,
		jobs.NewHorizonExtender,
	)

	return &jobs.HorizonExtender{}
}

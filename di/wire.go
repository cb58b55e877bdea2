//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Lynxxxc/RESERVASI/config"
	"github.com/Lynxxxc/RESERVASI/infras/kafka"
	"github.com/Lynxxxc/RESERVASI/infras/otel"
	"github.com/Lynxxxc/RESERVASI/infras/redis"
	roomRepository "github.com/Lynxxxc/RESERVASI/internal/domains/room/repository"
	roomService "github.com/Lynxxxc/RESERVASI/internal/domains/room/service"
	roomHandler "github.com/Lynxxxc/RESERVASI/internal/handlers/room"
	"github.com/Lynxxxc/RESERVASI/shared/cache"
	"github.com/Lynxxxc/RESERVASI/transport/http"
	"github.com/Lynxxxc/RESERVASI/transport/http/middleware"
	"github.com/Lynxxxc/RESERVASI/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
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

var roomDomain = wire.NewSet(
	roomRepository.NewRegistry,
	roomRepository.NewSnapshotStore,
	roomService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		roomDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

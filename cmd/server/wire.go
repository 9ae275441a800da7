//go:build wireinject
// +build wireinject

package main

import (
	"duo-talk/internal/config"
	"duo-talk/internal/delivery"
	"duo-talk/internal/gateway"
	"duo-talk/internal/handler"
	"duo-talk/internal/repository/mongo"
	"duo-talk/internal/repository/postgres"
	"duo-talk/internal/service"

	"github.com/google/wire"
	"github.com/rs/zerolog"
)

// InitializeApp creates a new application.
func InitializeApp(cfg *config.Config, logger zerolog.Logger) (*App, func(), error) {
	wire.Build(
		// Infrastructure Providers
		wire.NewSet(
			provideContext,
			providePostgresDB,
			provideMongoDB,
			provideNotifier,
			wire.Bind(new(service.INotifier), new(*delivery.NatsNotifier)),
			wire.Bind(new(gateway.Broker), new(*delivery.NatsNotifier)),
		),
		// Repository Providers
		wire.NewSet(
			postgres.NewUserRepository,
			wire.Bind(new(service.IUserRepository), new(*postgres.UserRepository)),

			postgres.NewRoomRepository,
			wire.Bind(new(service.IRoomRepository), new(*postgres.RoomRepository)),

			mongo.NewMessageRepository,
			wire.Bind(new(service.IMessageRepository), new(*mongo.MessageRepository)),
		),
		// Service Providers
		wire.NewSet(
			service.NewRoomService,
			wire.Bind(new(service.IRoomService), new(*service.RoomService)),

			service.NewMessageService,
			wire.Bind(new(service.IMessageService), new(*service.MessageService)),

			service.NewUserService,
			wire.Bind(new(service.IUserService), new(*service.UserService)),
		),
		// Handler Providers
		wire.NewSet(
			handler.NewWebsocketHandler,
			handler.NewRestHandler,
			handler.NewRouter,
		),
		// App Provider
		wire.NewSet(
			wire.Struct(new(App), "*"),
		),
	)
	return nil, nil, nil
}

package main

import (
	"context"
	"database/sql"

	"duo-talk/internal/config"
	"duo-talk/internal/delivery"
	"duo-talk/internal/repository/mongo"
	"duo-talk/internal/repository/postgres"

	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

func provideContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, func() { cancel() }
}

func providePostgresDB(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Close() }
	return db, cleanup, nil
}

func provideMongoDB(ctx context.Context, cfg *config.Config) (*mongodriver.Database, func(), error) {
	db, err := mongo.NewDB(ctx, cfg.MongoURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Client().Disconnect(ctx) }
	return db, cleanup, nil
}

func provideNotifier(cfg *config.Config, logger zerolog.Logger) (*delivery.NatsNotifier, func(), error) {
	notifier, err := delivery.NewNatsNotifier(cfg.NatsURL, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { notifier.Close() }
	return notifier, cleanup, nil
}

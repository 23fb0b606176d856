package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/alimikegami/point-of-sales/catalog-service/config"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/app"
	circuitbreaker "github.com/alimikegami/point-of-sales/catalog-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/infrastructure/message-queue/kafka"
	"github.com/rs/zerolog/log"
)

//	@title			Catalog Service API
//	@version		1.0
//	@description	Categories and products of the point-of-sales catalog.
//	@BasePath		/api
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config, err := config.CreateNewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	app.ConfigureLogger(config)

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer db.Client().Disconnect(context.Background())

	application := app.App{
		DB:     db,
		Config: config,
	}

	if config.EventsEnabled() {
		writer := kafka.CreateKafkaWriter(config)
		publisher := kafka.CreateEventPublisher(writer, circuitbreaker.CreateCircuitBreaker("kafka-publisher"))
		defer publisher.Close()
		application.Publisher = publisher
	} else {
		log.Info().Msg("BROKER_ADDRESS not set, domain events disabled")
		application.Publisher = kafka.NoopPublisher{}
	}

	if err := application.Start(ctx); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
	}
}

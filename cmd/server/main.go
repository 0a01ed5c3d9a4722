package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/handler"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/server"
	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/internal/workers"
	"github.com/MKhiriev/go-recipe-box/migrations"
	"github.com/MKhiriev/go-recipe-box/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipe-box-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewServices(storages, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// the database is connected in the background, requests that need it
	// get 503 until the pool is attached
	bootstrapped := workers.NewWorkers(
		workers.NewDBBootstrap(storages.Pool, migrations.Migrate, log),
	).Start(ctx)

	srv.RunServer()

	cancel()
	<-bootstrapped
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

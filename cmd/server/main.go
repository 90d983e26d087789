package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/handler"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/server"
	"github.com/MKhiriev/socialix/internal/service"
	"github.com/MKhiriev/socialix/internal/store"
	"github.com/MKhiriev/socialix/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("socialix-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	janitor := workers.NewMediaJanitor(storages.MediaStorage, cfg.Workers, log)
	backgroundWorkers := workers.NewWorkers(janitor)
	backgroundWorkers.Run(ctx)
	defer backgroundWorkers.Stop()

	services, err := service.NewServices(storages, janitor, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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

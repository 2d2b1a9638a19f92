// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/handler"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/server"
	"github.com/MKhiriev/go-music-upload/internal/service"
	"github.com/MKhiriev/go-music-upload/internal/store"
	"github.com/MKhiriev/go-music-upload/internal/workers"
	"github.com/MKhiriev/go-music-upload/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("music-upload-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	janitor := workers.NewStagingJanitor(services.StagingService, cfg.Staging.CleanupInterval, log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(janitor), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}

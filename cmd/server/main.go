// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	_ "github.com/joho/godotenv/autoload"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/handler"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/metrics"
	"github.com/MKhiriev/go-snippet-box/internal/server"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/store"
	"github.com/MKhiriev/go-snippet-box/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("snippet-box-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version()
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("http_address", cfg.Server.HTTPAddress).Msg("received configs")

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

	collector := metrics.NewCollector()

	services, err := service.NewServices(storages, *cfg, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, collector, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

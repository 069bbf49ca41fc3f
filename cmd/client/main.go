// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	_ "github.com/joho/godotenv/autoload"

	"github.com/MKhiriev/go-snippet-box/internal/adapter"
	"github.com/MKhiriev/go-snippet-box/internal/client"
	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/tui"
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

	log := logger.NewClientLogger("snippet-box-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)
	store := state.NewStore(state.Initial())

	ui, err := tui.New(services, store, cfg.Client, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

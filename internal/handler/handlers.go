// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/handler/http"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers for the configured listeners.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, metrics http.MetricsCollector, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, metrics, logger),
	}, nil
}

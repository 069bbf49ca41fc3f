// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/service"
)

// maxBodyBytes bounds decoded request bodies. The largest legal body is a
// snippet with 8000 runes of code.
const maxBodyBytes = 1 << 16

// MetricsCollector observes finished requests and serves the metrics page.
type MetricsCollector interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
	Handler() http.Handler
}

type Handler struct {
	services *service.Services
	metrics  MetricsCollector

	tokenDuration  time.Duration
	cookieSecure   bool
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil, in which case
// requests are not observed and /metrics is not served.
func NewHandler(services *service.Services, cfg config.StructuredConfig, metrics MetricsCollector, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		tokenDuration:  cfg.App.TokenDuration,
		cookieSecure:   cfg.App.CookieSecure,
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

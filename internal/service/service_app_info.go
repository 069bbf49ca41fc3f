// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/store"
)

type appInfoService struct {
	appVersion string
	pinger     store.Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger store.Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	if err := s.pinger.PingContext(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/store"
)

type Services struct {
	AuthService    AuthService
	SnippetService SnippetService
	PreviewService PreviewService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, recorder Recorder, logger *logger.Logger) (*Services, error) {
	previewService, err := NewPreviewService(storages.SnippetRepository, cfg.Preview, recorder, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating preview service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, storages.Pinger, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	snippetService := NewSnippetValidationService().
		Wrap(NewSnippetService(storages.SnippetRepository, recorder, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		SnippetService: snippetService,
		PreviewService: previewService,
		AppInfoService: appInfoService,
	}, nil
}

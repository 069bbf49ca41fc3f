// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	_ "embed"
	"fmt"
	"maps"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/store"
	"github.com/MKhiriev/go-snippet-box/models"
)

// Sandbox bundle layout.
const (
	PreviewTemplate  = "react"
	PreviewAppFile   = "/App.js"
	PreviewStyleFile = "/styles.css"
	PreviewIndexFile = "/public/index.html"
)

var (
	//go:embed preview/styles.css
	previewStyles string
	//go:embed preview/index.html
	previewIndex string
)

// previewKey changes whenever the snippet is edited, so a stale bundle is
// never served.
type previewKey struct {
	id        string
	updatedAt int64
}

type previewService struct {
	snippetRepository store.SnippetRepository
	cache             *lru.Cache[previewKey, models.PreviewBundle]
	recorder          Recorder

	logger *logger.Logger
}

func NewPreviewService(snippetRepository store.SnippetRepository, cfg config.Preview, recorder Recorder, logger *logger.Logger) (PreviewService, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = config.DefaultPreviewCache
	}

	cache, err := lru.New[previewKey, models.PreviewBundle](size)
	if err != nil {
		return nil, fmt.Errorf("error creating preview cache: %w", err)
	}

	return &previewService{
		snippetRepository: snippetRepository,
		cache:             cache,
		recorder:          recorderOrNop(recorder),
		logger:            logger,
	}, nil
}

func (p *previewService) Bundle(ctx context.Context, id string) (models.PreviewBundle, error) {
	snippet, err := p.snippetRepository.FindSnippetByID(ctx, id)
	if err != nil {
		return models.PreviewBundle{}, fmt.Errorf("error loading snippet for preview: %w", err)
	}

	key := previewKey{id: snippet.ID, updatedAt: snippet.UpdatedAt.UnixNano()}
	if bundle, ok := p.cache.Get(key); ok {
		p.recorder.PreviewCacheLookup(true)
		return copyBundle(bundle), nil
	}
	p.recorder.PreviewCacheLookup(false)

	bundle := models.PreviewBundle{
		SnippetID: snippet.ID,
		Template:  PreviewTemplate,
		Files: map[string]string{
			PreviewAppFile:   snippet.Code,
			PreviewStyleFile: previewStyles,
			PreviewIndexFile: previewIndex,
		},
		UpdatedAt: snippet.UpdatedAt,
	}
	p.cache.Add(key, bundle)

	return copyBundle(bundle), nil
}

// copyBundle keeps callers from mutating the cached files map.
func copyBundle(b models.PreviewBundle) models.PreviewBundle {
	b.Files = maps.Clone(b.Files)
	return b
}

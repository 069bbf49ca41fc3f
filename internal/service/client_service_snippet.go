// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snippet-box/internal/adapter"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

type clientSnippetService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientSnippetService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSnippetService {
	return &clientSnippetService{
		adapter:   serverAdapter,
		validator: validators.NewSnippetValidator(),
		logger:    logger,
	}
}

func (s *clientSnippetService) Get(ctx context.Context, id string) (models.Snippet, error) {
	snippet, err := s.adapter.GetSnippet(ctx, id)
	return snippet, mapAdapterError(err)
}

func (s *clientSnippetService) Create(ctx context.Context, in models.SnippetInput) (models.Snippet, error) {
	in, err := s.prepare(ctx, in)
	if err != nil {
		return models.Snippet{}, err
	}

	snippet, err := s.adapter.CreateSnippet(ctx, in)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSnippetService.Create").Msg("create failed")
		return models.Snippet{}, mapAdapterError(err)
	}
	return snippet, nil
}

func (s *clientSnippetService) Update(ctx context.Context, id string, in models.SnippetInput) (models.Snippet, error) {
	in, err := s.prepare(ctx, in)
	if err != nil {
		return models.Snippet{}, err
	}

	snippet, err := s.adapter.UpdateSnippet(ctx, id, in)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSnippetService.Update").Str("id", id).Msg("update failed")
		return models.Snippet{}, mapAdapterError(err)
	}
	return snippet, nil
}

func (s *clientSnippetService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteSnippet(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*clientSnippetService.Delete").Str("id", id).Msg("delete failed")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientSnippetService) Preview(ctx context.Context, id string) (models.PreviewBundle, error) {
	bundle, err := s.adapter.Preview(ctx, id)
	return bundle, mapAdapterError(err)
}

func (s *clientSnippetService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.adapter.Categories(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return categories, nil
}

func (s *clientSnippetService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.ServerVersion(ctx)
	return version, mapAdapterError(err)
}

// prepare normalises in the way the server does and rejects it before a
// round trip when it would fail server-side validation anyway.
func (s *clientSnippetService) prepare(ctx context.Context, in models.SnippetInput) (models.SnippetInput, error) {
	in = NormalizeSnippetInput(in)
	if in.Category == "" {
		in.Category = models.CategoryEtc
	}
	if err := s.validator.Validate(ctx, in); err != nil {
		return in, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return in, nil
}

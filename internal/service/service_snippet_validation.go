// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

// SnippetValidationService trims and validates snippet input before it
// reaches the wrapped service. Reads pass straight through.
type SnippetValidationService struct {
	inner     SnippetService
	validator validators.Validator
}

func NewSnippetValidationService() SnippetServiceWrapper {
	return &SnippetValidationService{
		validator: validators.NewSnippetValidator(),
	}
}

func (v *SnippetValidationService) Wrap(inner SnippetService) SnippetService {
	v.inner = inner
	return v
}

func (v *SnippetValidationService) List(ctx context.Context, caller string, query models.ListQuery) (models.ListResponse, error) {
	return v.inner.List(ctx, caller, query)
}

func (v *SnippetValidationService) Get(ctx context.Context, id string) (models.Snippet, error) {
	return v.inner.Get(ctx, id)
}

func (v *SnippetValidationService) Create(ctx context.Context, caller string, in models.SnippetInput) (models.Snippet, error) {
	if caller == "" {
		return models.Snippet{}, ErrUnauthenticated
	}

	in = NormalizeSnippetInput(in)
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, caller, in)
}

func (v *SnippetValidationService) Update(ctx context.Context, caller, id string, in models.SnippetInput) (models.Snippet, error) {
	if caller == "" {
		return models.Snippet{}, ErrUnauthenticated
	}

	in = NormalizeSnippetInput(in)
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Update(ctx, caller, id, in)
}

func (v *SnippetValidationService) Delete(ctx context.Context, caller, id string) error {
	return v.inner.Delete(ctx, caller, id)
}

// NormalizeSnippetInput trims surrounding whitespace from every field.
func NormalizeSnippetInput(in models.SnippetInput) models.SnippetInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = models.Category(strings.TrimSpace(string(in.Category)))
	in.Code = strings.TrimSpace(in.Code)
	return in
}

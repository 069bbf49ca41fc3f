// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

func TestSnippetValidationService_PassesNormalizedInput(t *testing.T) {
	var got models.SnippetInput
	inner := &mockSnippetService{
		createFn: func(_ context.Context, caller string, in models.SnippetInput) (models.Snippet, error) {
			got = in
			return models.Snippet{OwnerID: caller}.Apply(in), nil
		},
	}
	svc := NewSnippetValidationService().Wrap(inner)

	_, err := svc.Create(context.Background(), "alice", models.SnippetInput{
		Title: "  Primary Button ", Description: " d ", Category: " button", Code: "\n<button/>\n",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SnippetInput{
		Title: "Primary Button", Description: "d", Category: models.CategoryButton, Code: "<button/>",
	}, got)
}

func TestSnippetValidationService_Rejects(t *testing.T) {
	inner := &mockSnippetService{
		createFn: func(context.Context, string, models.SnippetInput) (models.Snippet, error) {
			t.Fatal("inner service must not be called")
			return models.Snippet{}, nil
		},
		updateFn: func(context.Context, string, string, models.SnippetInput) (models.Snippet, error) {
			t.Fatal("inner service must not be called")
			return models.Snippet{}, nil
		},
	}
	svc := NewSnippetValidationService().Wrap(inner)
	ctx := context.Background()

	tests := []struct {
		name      string
		caller    string
		in        models.SnippetInput
		wantErr   error
		wantField string
	}{
		{"anonymous", "", models.SnippetInput{Title: "T", Code: "C"}, ErrUnauthenticated, ""},
		{"blank title", "alice", models.SnippetInput{Title: "   ", Code: "C"}, ErrValidation, "title"},
		{"title too long", "alice", models.SnippetInput{Title: strings.Repeat("x", 41), Code: "C"}, ErrValidation, "title"},
		{"virtual category", "alice", models.SnippetInput{Title: "T", Code: "C", Category: models.CategoryAll}, ErrValidation, "category"},
		{"missing code", "alice", models.SnippetInput{Title: "T"}, ErrValidation, "code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for op, call := range map[string]func() error{
				"create": func() error { _, err := svc.Create(ctx, tt.caller, tt.in); return err },
				"update": func() error { _, err := svc.Update(ctx, tt.caller, "id", tt.in); return err },
			} {
				err := call()
				require.ErrorIs(t, err, tt.wantErr, op)
				if tt.wantField == "" {
					continue
				}
				assert.ErrorIs(t, err, validators.ErrInvalidSnippet, op)
				var fieldErrs validation.Errors
				require.True(t, errors.As(err, &fieldErrs), op)
				assert.Contains(t, fieldErrs, tt.wantField, op)
			}
		})
	}
}

func TestSnippetValidationService_ReadsPassThrough(t *testing.T) {
	called := map[string]bool{}
	inner := &mockSnippetService{
		listFn: func(context.Context, string, models.ListQuery) (models.ListResponse, error) {
			called["list"] = true
			return models.ListResponse{}, nil
		},
		getFn: func(context.Context, string) (models.Snippet, error) {
			called["get"] = true
			return models.Snippet{}, nil
		},
		deleteFn: func(context.Context, string, string) error {
			called["delete"] = true
			return nil
		},
	}
	svc := NewSnippetValidationService().Wrap(inner)
	ctx := context.Background()

	_, _ = svc.List(ctx, "", models.ListQuery{})
	_, _ = svc.Get(ctx, "id")
	_ = svc.Delete(ctx, "alice", "id")

	assert.Equal(t, map[string]bool{"list": true, "get": true, "delete": true}, called)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snippet-box/models"
)

func validInput() models.SnippetInput {
	return models.SnippetInput{
		Title:       "T",
		Description: "D",
		Category:    models.CategoryButton,
		Code:        "C",
	}
}

func TestSnippetValidator_Valid(t *testing.T) {
	v := NewSnippetValidator()
	ctx := context.Background()

	in := validInput()
	require.NoError(t, v.Validate(ctx, in))
	require.NoError(t, v.Validate(ctx, &in))
	require.NoError(t, v.Validate(ctx, models.Snippet{}.Apply(in)))

	in.Category = ""
	assert.NoError(t, v.Validate(ctx, in), "empty category is stored as etc")
}

func TestSnippetValidator_Rules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *models.SnippetInput)
		wantField string
	}{
		{"empty title", func(in *models.SnippetInput) { in.Title = "" }, "title"},
		{"title 41 runes", func(in *models.SnippetInput) { in.Title = strings.Repeat("a", 41) }, "title"},
		{"description 161 runes", func(in *models.SnippetInput) { in.Description = strings.Repeat("d", 161) }, "description"},
		{"empty code", func(in *models.SnippetInput) { in.Code = "" }, "code"},
		{"code over limit", func(in *models.SnippetInput) { in.Code = strings.Repeat("c", models.MaxCodeLength+1) }, "code"},
		{"virtual category all", func(in *models.SnippetInput) { in.Category = models.CategoryAll }, "category"},
		{"virtual category my", func(in *models.SnippetInput) { in.Category = models.CategoryMy }, "category"},
		{"unknown category", func(in *models.SnippetInput) { in.Category = "widget" }, "category"},
	}

	v := NewSnippetValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.Validate(context.Background(), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSnippet)

			var fieldErrs validation.Errors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Contains(t, fieldErrs, tt.wantField)
		})
	}
}

func TestSnippetValidator_LengthsCountRunes(t *testing.T) {
	v := NewSnippetValidator()
	in := validInput()
	// 40 three-byte runes
	in.Title = strings.Repeat("버", models.MaxTitleLength)
	assert.NoError(t, v.Validate(context.Background(), in))

	in.Title = strings.Repeat("a", models.MaxTitleLength)
	assert.NoError(t, v.Validate(context.Background(), in))
}

func TestSnippetValidator_FieldScoping(t *testing.T) {
	v := NewSnippetValidator()
	in := models.SnippetInput{Title: "only a title"}

	assert.NoError(t, v.Validate(context.Background(), in, FieldTitle))
	assert.Error(t, v.Validate(context.Background(), in, FieldTitle, FieldCode))
	assert.ErrorIs(t, v.Validate(context.Background(), in, "owner"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		creds   models.Credentials
		fields  []string
		wantErr bool
	}{
		{"valid", models.Credentials{AccountID: "alice", Password: "secret1"}, nil, false},
		{"short account id", models.Credentials{AccountID: "al", Password: "secret1"}, nil, true},
		{"short password", models.Credentials{AccountID: "alice", Password: "12345"}, nil, true},
		{"missing password", models.Credentials{AccountID: "alice"}, nil, true},
		{"password over bcrypt limit", models.Credentials{AccountID: "alice", Password: strings.Repeat("p", 73)}, nil, true},
		{"login presence ok", models.Credentials{AccountID: "al", Password: "1"},
			[]string{FieldAccountIDPresence, FieldPasswordPresence}, false},
		{"login presence missing", models.Credentials{AccountID: "al"},
			[]string{FieldAccountIDPresence, FieldPasswordPresence}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.creds, tt.fields...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.ErrorIs(t, v.Validate(ctx, "alice"), ErrUnsupportedType)
}

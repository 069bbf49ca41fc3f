// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-snippet-box/models"
)

// Snippet field names accepted by [SnippetValidator].
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldCode        = "code"
)

var snippetFields = []string{FieldTitle, FieldDescription, FieldCategory, FieldCode}

// storableCategories lists every category a record may carry. The virtual
// filters all and my are not in it.
var storableCategories = func() []any {
	out := make([]any, 0, len(models.Categories))
	for _, c := range models.Categories {
		out = append(out, c)
	}
	return out
}()

// SnippetValidator validates models.SnippetInput and models.Snippet.
//
// Lengths are counted in runes. An empty category passes; the mutation
// service stores it as models.CategoryEtc.
type SnippetValidator struct{}

func NewSnippetValidator() Validator {
	return &SnippetValidator{}
}

func (v *SnippetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SnippetInput:
		return v.validateInput(ctx, &value, fields...)
	case *models.SnippetInput:
		return v.validateInput(ctx, value, fields...)
	case models.Snippet:
		in := value.Input()
		return v.validateInput(ctx, &in, fields...)
	case *models.Snippet:
		in := value.Input()
		return v.validateInput(ctx, &in, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SnippetValidator) validateInput(ctx context.Context, in *models.SnippetInput, fields ...string) error {
	if len(fields) == 0 {
		fields = snippetFields
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldTitle:
			rules = append(rules, validation.Field(&in.Title,
				validation.Required, validation.RuneLength(0, models.MaxTitleLength)))
		case FieldDescription:
			rules = append(rules, validation.Field(&in.Description,
				validation.RuneLength(0, models.MaxDescriptionLength)))
		case FieldCategory:
			rules = append(rules, validation.Field(&in.Category,
				validation.In(storableCategories...).Error("must be one of the snippet categories")))
		case FieldCode:
			rules = append(rules, validation.Field(&in.Code,
				validation.Required, validation.RuneLength(0, models.MaxCodeLength)))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if err := validation.ValidateStructWithContext(ctx, in, rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnippet, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-snippet-box/models"
)

const (
	MinAccountIDLength = 3
	MinPasswordLength  = 6
	MaxAccountIDLength = 64
	// MaxPasswordLength is the bcrypt input limit in bytes.
	MaxPasswordLength = 72
)

// Credential field names accepted by [CredentialsValidator].
const (
	FieldAccountID = "accountId"
	FieldPassword  = "password"
	// Presence fields only check that a value was sent. Login uses them so
	// that a malformed account id is reported as wrong credentials.
	FieldAccountIDPresence = "accountId presence"
	FieldPasswordPresence  = "password presence"
)

// CredentialsValidator validates models.Credentials for signup and login.
type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, &value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, c *models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldPassword}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldAccountID:
			rules = append(rules, validation.Field(&c.AccountID,
				validation.Required, validation.RuneLength(MinAccountIDLength, MaxAccountIDLength)))
		case FieldPassword:
			rules = append(rules, validation.Field(&c.Password,
				validation.Required, validation.RuneLength(MinPasswordLength, 0), validation.Length(0, MaxPasswordLength)))
		case FieldAccountIDPresence:
			rules = append(rules, validation.Field(&c.AccountID, validation.Required))
		case FieldPasswordPresence:
			rules = append(rules, validation.Field(&c.Password, validation.Required))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	if err := validation.ValidateStructWithContext(ctx, c, rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return nil
}

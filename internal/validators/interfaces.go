// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules shared by the server and the
// terminal client.
//
// Rules are written with ozzo-validation. A [Validator] validates a value
// and may be restricted to a subset of named fields, so a caller can check a
// single form input before the whole record is complete.
//
// Rejected values produce an error that wraps both a package sentinel
// ([ErrInvalidSnippet], [ErrInvalidCredentials]) and the ozzo
// validation.Errors map, so callers can match with errors.Is and still
// report per-field messages.
package validators

import "context"

// Validator validates the provided input, optionally restricted to
// specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}

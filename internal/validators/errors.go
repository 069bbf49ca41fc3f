// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidSnippet wraps the field errors of a rejected snippet input.
	ErrInvalidSnippet = errors.New("invalid snippet")
	// ErrInvalidCredentials wraps the field errors of rejected credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps rejected user input. The wrapped chain also holds
	// the validators sentinel and the per-field ozzo errors.
	ErrValidation          = errors.New("validation failed")
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is returned when an operation needs a caller and
	// there is none.
	ErrUnauthenticated  = errors.New("authentication required")
	ErrWrongCredentials = errors.New("wrong account id or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client side errors.
var (
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrAccountTaken        = errors.New("account id is already taken")
	ErrSnippetNotFound     = errors.New("snippet not found")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrNoMorePages         = errors.New("no more pages")
	ErrFetchInFlight       = errors.New("a page fetch is already in flight")
)

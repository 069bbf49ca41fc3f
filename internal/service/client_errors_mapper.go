// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-snippet-box/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a client
// business error. The adapter error stays in the chain so the server's
// message remains reachable through adapter.ServerMessage.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var target error
	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		target = ErrValidation
	case errors.Is(err, adapter.ErrUnauthorized):
		target = ErrUnauthenticated
	case errors.Is(err, adapter.ErrNotFound):
		target = ErrSnippetNotFound
	case errors.Is(err, adapter.ErrConflict):
		target = ErrAccountTaken
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		target = ErrServerUnavailable
	default:
		return err
	}

	return fmt.Errorf("%w: %w", target, err)
}

// mapLoginError differs from mapAdapterError only for 401, which at login
// means the credentials were rejected rather than that a session expired.
func mapLoginError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}
	return mapAdapterError(err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-snippet-box/internal/adapter"
	"github.com/MKhiriev/go-snippet-box/internal/service"
)

// ErrUserQuit is returned by TUI.Run when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

const serverUnavailableText = "No network or the server is unavailable"

// humanizeError turns a service error into one line for the user. Field
// errors from local validation and messages sent by the server are shown as
// they are.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrServerUnavailable) || isNetworkError(err) {
		return serverUnavailableText
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return fieldErrs.Error()
	}
	if msg := adapter.ServerMessage(err); msg != "" {
		return msg
	}

	for _, known := range []error{
		service.ErrWrongCredentials,
		service.ErrPasswordsDoNotMatch,
		service.ErrAccountTaken,
		service.ErrSnippetNotFound,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

// ignorableListError reports list errors that need no message: the fetch
// is already running or there is nothing more to load.
func ignorableListError(err error) bool {
	return errors.Is(err, service.ErrFetchInFlight) || errors.Is(err, service.ErrNoMorePages)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-snippet-box/internal/app"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/store"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnauthenticated:         http.StatusUnauthorized,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrSnippetNotFound:      http.StatusNotFound,
	store.ErrAccountAlreadyExists: http.StatusConflict,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrUnauthenticated:         app.MsgAuthenticationRequired,
	service.ErrWrongCredentials:        app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgAuthenticationRequired,

	store.ErrSnippetNotFound:      app.MsgSnippetNotFound,
	store.ErrAccountAlreadyExists: app.MsgAccountAlreadyExists,
}

// statusFromError maps a service or store error to its HTTP status.
// Anything unrecognised is a 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the user-facing message for err. Validation
// failures carry their per-field messages; unexpected errors never leak
// internal detail.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrValidation) {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return fieldErrs.Error()
		}
		return app.MsgInvalidDataProvided
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and writes the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error while handling request")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, messageFromError(err), status)
}

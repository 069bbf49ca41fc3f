// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-snippet-box/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
	http.StatusInternalServerError: ErrInternalServerError,
}

// HTTPError is a non-2xx answer from the server. It unwraps to one of the
// sentinel errors of this package.
type HTTPError struct {
	Status  int
	Message string
	kind    error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.kind
}

// ServerMessage returns the message the server attached to err, or "" when
// err did not come from a server response.
func ServerMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return ""
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewHTTPError(resp.StatusCode(), messageFromBody(resp))
}

// NewHTTPError builds the error for a status the server answered with.
func NewHTTPError(status int, message string) error {
	kind, ok := statusErrors[status]
	if !ok {
		kind = ErrUnexpectedStatus
	}
	return &HTTPError{Status: status, Message: message, kind: kind}
}

func messageFromBody(resp *resty.Response) string {
	body := resp.Body()

	var msg models.MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}

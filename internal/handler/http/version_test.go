// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snippet-box/models"
)

func TestGetServerVersion(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestDeps().handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rr.Body.String())
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"database reachable", nil, http.StatusOK, healthStatusOK},
		{"database down", errors.New("connection refused"), http.StatusServiceUnavailable, healthStatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps()
			deps.appInfo.pingErr = tt.pingErr

			rr := httptest.NewRecorder()
			deps.handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			var resp models.HealthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.wantBody, resp.Status)
			assert.Equal(t, "test-version", resp.Version)
		})
	}
}

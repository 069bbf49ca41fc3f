// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snippet-box/internal/app"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/store"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&msg))
	return msg.Message
}

// ─────────────────────────────────────────────
// POST /auth/signup
// ─────────────────────────────────────────────

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantMsg    string
	}{
		{"created", `{"accountId":"alice","password":"secret1"}`, nil, http.StatusCreated, app.MsgSignedUp},
		{"invalid json", `{"accountId":`, nil, http.StatusBadRequest, app.MsgInvalidJSON},
		{"missing fields", `{"accountId":"alice"}`,
			fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidCredentials), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"duplicate", `{"accountId":"alice","password":"secret1"}`,
			fmt.Errorf("user creation ended with error: %w", store.ErrAccountAlreadyExists), http.StatusConflict, app.MsgAccountAlreadyExists},
		{"store down", `{"accountId":"alice","password":"secret1"}`,
			errors.New("connection reset"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps()
			deps.auth.registerFn = func(_ context.Context, creds models.Credentials) (models.User, error) {
				return models.User{AccountID: creds.AccountID}, tt.serviceErr
			}

			rr := httptest.NewRecorder()
			deps.handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rr))
		})
	}
}

// ─────────────────────────────────────────────
// POST /auth/login
// ─────────────────────────────────────────────

func TestLogin_SetsSessionCookie(t *testing.T) {
	deps := newTestDeps()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"accountId":"alice","password":"secret1"}`))
	deps.handler().Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer token-alice", rr.Header().Get("Authorization"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, utils.SessionCookieName, c.Name)
	assert.Equal(t, "token-alice", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 3600, c.MaxAge)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		verifyErr  error
		issueErr   error
		wantStatus int
	}{
		{"wrong credentials", service.ErrWrongCredentials, nil, http.StatusUnauthorized},
		{"missing fields", service.ErrValidation, nil, http.StatusBadRequest},
		{"token failure", nil, service.ErrTokenCreationFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps()
			deps.auth.verifyFn = func(_ context.Context, creds models.Credentials) (models.User, error) {
				return models.User{AccountID: creds.AccountID}, tt.verifyErr
			}
			deps.auth.issueFn = func(context.Context, string) (models.Token, error) {
				return models.Token{}, tt.issueErr
			}

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"accountId":"alice","password":"x"}`))
			deps.handler().Init().ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Empty(t, rr.Result().Cookies())
		})
	}
}

// ─────────────────────────────────────────────
// POST /auth/logout, GET /auth/me
// ─────────────────────────────────────────────

func TestLogout_ExpiresCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestDeps().handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, utils.SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestMe(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		bearer bool
		want   string
	}{
		{name: "anonymous", want: `{"user":null}`},
		{name: "expired or unknown token", token: "stale", want: `{"user":null}`},
		{name: "cookie session", token: "alice-token", want: `{"user":{"accountId":"alice"}}`},
		{name: "bearer session", token: "bob-token", bearer: true, want: `{"user":{"accountId":"bob"}}`},
	}

	router := newTestDeps().handler().Init()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			switch {
			case tt.token != "" && tt.bearer:
				req.Header.Set("Authorization", "Bearer "+tt.token)
			case tt.token != "":
				withSessionCookie(req, tt.token)
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.want, rr.Body.String())
		})
	}
}

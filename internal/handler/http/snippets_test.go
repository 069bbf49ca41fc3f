// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snippet-box/internal/app"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/store"
	"github.com/MKhiriev/go-snippet-box/models"
)

// ─────────────────────────────────────────────
// GET /snippets
// ─────────────────────────────────────────────

func TestListSnippets_ParsesQuery(t *testing.T) {
	cursor := time.Date(2026, 3, 1, 10, 30, 0, 123456789, time.UTC)

	tests := []struct {
		name   string
		url    string
		token  string
		want   models.ListQuery
		caller string
	}{
		{
			name: "no parameters",
			url:  "/snippets",
			want: models.ListQuery{},
		},
		{
			name: "all parameters",
			url:  "/snippets?category=button&search=primary&limit=5&cursor=" + cursor.Format(time.RFC3339Nano),
			want: models.ListQuery{Category: models.CategoryButton, Search: "primary", Limit: 5, Cursor: &cursor},
		},
		{
			name: "non-numeric limit and bad cursor are dropped",
			url:  "/snippets?limit=lots&cursor=yesterday",
			want: models.ListQuery{},
		},
		{
			name:   "caller forwarded",
			url:    "/snippets?category=my",
			token:  "alice-token",
			want:   models.ListQuery{Category: models.CategoryMy},
			caller: "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				gotQuery  models.ListQuery
				gotCaller string
			)
			deps := newTestDeps()
			deps.snippets.listFn = func(_ context.Context, caller string, q models.ListQuery) (models.ListResponse, error) {
				gotCaller, gotQuery = caller, q
				return models.ListResponse{Snippets: []models.Snippet{}, Counts: models.Counts{}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.token != "" {
				withSessionCookie(req, tt.token)
			}
			rr := httptest.NewRecorder()
			deps.handler().Init().ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.caller, gotCaller)
			assert.Equal(t, tt.want.Category, gotQuery.Category)
			assert.Equal(t, tt.want.Search, gotQuery.Search)
			assert.Equal(t, tt.want.Limit, gotQuery.Limit)
			if tt.want.Cursor == nil {
				assert.Nil(t, gotQuery.Cursor)
			} else {
				require.NotNil(t, gotQuery.Cursor)
				assert.True(t, tt.want.Cursor.Equal(*gotQuery.Cursor))
			}
		})
	}
}

func TestListSnippets_ResponseShape(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	deps := newTestDeps()
	deps.snippets.listFn = func(context.Context, string, models.ListQuery) (models.ListResponse, error) {
		return models.ListResponse{
			Snippets:   []models.Snippet{{ID: "s1", Title: "T", CreatedAt: created, UpdatedAt: created}},
			Counts:     models.Counts{models.CategoryAll: 1, models.CategoryMy: 0, models.CategoryButton: 1},
			NextCursor: &created,
		}, nil
	}

	rr := httptest.NewRecorder()
	deps.handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/snippets", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.JSONEq(t, `{"all":1,"my":0,"button":1}`, string(body["counts"]))
	assert.JSONEq(t, `"2026-03-01T10:00:00Z"`, string(body["nextCursor"]))
	assert.Contains(t, string(body["snippets"]), `"ownerId"`)
}

func TestListSnippets_MyWithoutSession(t *testing.T) {
	deps := newTestDeps()
	deps.snippets.listFn = func(_ context.Context, caller string, q models.ListQuery) (models.ListResponse, error) {
		if q.Category == models.CategoryMy && caller == "" {
			return models.ListResponse{}, service.ErrUnauthenticated
		}
		return models.ListResponse{}, nil
	}

	rr := httptest.NewRecorder()
	deps.handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/snippets?category=my", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, app.MsgAuthenticationRequired, decodeMessage(t, rr))
}

// ─────────────────────────────────────────────
// GET /snippets/{id}, GET /snippets/{id}/preview
// ─────────────────────────────────────────────

func TestGetSnippet(t *testing.T) {
	deps := newTestDeps()
	deps.snippets.getFn = func(_ context.Context, id string) (models.Snippet, error) {
		if id != "s1" {
			return models.Snippet{}, fmt.Errorf("error getting snippet: %w", store.ErrSnippetNotFound)
		}
		return models.Snippet{ID: "s1", Title: "T"}, nil
	}
	router := deps.handler().Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/snippets/s1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Snippet
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "T", got.Title)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/snippets/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgSnippetNotFound, decodeMessage(t, rr))
}

func TestPreviewSnippet(t *testing.T) {
	deps := newTestDeps()
	rr := httptest.NewRecorder()
	deps.handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/snippets/s1/preview", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.PreviewBundle
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "s1", got.SnippetID)
	assert.Equal(t, "react", got.Template)
}

// ─────────────────────────────────────────────
// POST /snippets, PUT/DELETE /snippets/{id}
// ─────────────────────────────────────────────

func TestMutations_RequireSession(t *testing.T) {
	deps := newTestDeps()
	called := false
	deps.snippets.createFn = func(context.Context, string, models.SnippetInput) (models.Snippet, error) {
		called = true
		return models.Snippet{}, nil
	}
	router := deps.handler().Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/snippets"},
		{http.MethodPut, "/snippets/s1"},
		{http.MethodDelete, "/snippets/s1"},
	} {
		t.Run(tc.method, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(`{"title":"T","code":"C"}`))
			withSessionCookie(req, "forged")

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
	assert.False(t, called)
}

func TestCreateSnippet(t *testing.T) {
	deps := newTestDeps()
	var gotCaller string
	var gotInput models.SnippetInput
	deps.snippets.createFn = func(_ context.Context, caller string, in models.SnippetInput) (models.Snippet, error) {
		gotCaller, gotInput = caller, in
		return models.Snippet{ID: "s1", OwnerID: caller}.Apply(in), nil
	}

	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/snippets",
		strings.NewReader(`{"title":"T","description":"D","category":"button","code":"C"}`)), "alice-token")
	rr := httptest.NewRecorder()
	deps.handler().Init().ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "alice", gotCaller)
	assert.Equal(t, models.SnippetInput{Title: "T", Description: "D", Category: models.CategoryButton, Code: "C"}, gotInput)

	var created models.Snippet
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, "alice", created.OwnerID)
}

func TestCreateSnippet_ValidationMessage(t *testing.T) {
	deps := newTestDeps()
	deps.snippets.createFn = func(context.Context, string, models.SnippetInput) (models.Snippet, error) {
		return models.Snippet{}, fmt.Errorf("%w: %w", service.ErrValidation,
			validation.Errors{"title": validation.ErrRequired})
	}

	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/snippets", strings.NewReader(`{"code":"C"}`)), "alice-token")
	rr := httptest.NewRecorder()
	deps.handler().Init().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "title: cannot be blank.", decodeMessage(t, rr))
}

func TestUpdateAndDelete_NotOwned(t *testing.T) {
	deps := newTestDeps()
	deps.snippets.updateFn = func(_ context.Context, caller, id string, in models.SnippetInput) (models.Snippet, error) {
		if caller != "alice" {
			return models.Snippet{}, fmt.Errorf("error updating snippet: %w", store.ErrSnippetNotFound)
		}
		return models.Snippet{ID: id, OwnerID: caller}.Apply(in), nil
	}
	deps.snippets.deleteFn = func(_ context.Context, caller, id string) error {
		if caller != "alice" {
			return fmt.Errorf("error deleting snippet: %w", store.ErrSnippetNotFound)
		}
		return nil
	}
	router := deps.handler().Init()

	tests := []struct {
		name       string
		method     string
		token      string
		wantStatus int
	}{
		{"owner updates", http.MethodPut, "alice-token", http.StatusOK},
		{"other user updates", http.MethodPut, "bob-token", http.StatusNotFound},
		{"owner deletes", http.MethodDelete, "alice-token", http.StatusOK},
		{"other user deletes", http.MethodDelete, "bob-token", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withSessionCookie(httptest.NewRequest(tt.method, "/snippets/s1",
				strings.NewReader(`{"title":"T","category":"card","code":"C","description":""}`)), tt.token)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// GET /categories
// ─────────────────────────────────────────────

func TestCategories(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestDeps().handler().Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/categories", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.CategoriesResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, models.Categories, got.Categories)
	assert.NotContains(t, got.Categories, models.CategoryAll)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-snippet-box/internal/adapter"
	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/mock"
	"github.com/MKhiriev/go-snippet-box/models"
)

const testDebounce = 30 * time.Millisecond

func newTestListController(t *testing.T, onChange func(error)) (*ListController, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	c := NewListController(mockAdapter, config.Client{SearchDebounce: testDebounce, PageSize: 2}, onChange, logger.Nop())
	t.Cleanup(c.Close)
	return c, mockAdapter
}

func page(cursor *time.Time, counts models.Counts, ids ...string) models.ListResponse {
	resp := models.ListResponse{Snippets: []models.Snippet{}, Counts: counts, NextCursor: cursor}
	for _, id := range ids {
		resp.Snippets = append(resp.Snippets, models.Snippet{ID: id})
	}
	return resp
}

func ids(items []models.Snippet) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		out = append(out, s.ID)
	}
	return out
}

func TestListController_Defaults(t *testing.T) {
	c := NewListController(nil, config.Client{}, nil, logger.Nop())
	defer c.Close()

	assert.Equal(t, models.CategoryAll, c.Category())
	assert.Equal(t, config.DefaultClientPageSize, c.pageSize)
	assert.Empty(t, c.Items())
	assert.Empty(t, c.Counts())
	assert.False(t, c.HasNextPage())
}

func TestListController_Pagination(t *testing.T) {
	c, mockAdapter := newTestListController(t, nil)
	ctx := context.Background()
	cursor1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	firstCounts := models.Counts{models.CategoryAll: 5}

	gomock.InOrder(
		mockAdapter.EXPECT().
			ListSnippets(gomock.Any(), models.ListQuery{Category: models.CategoryAll, Limit: 2}).
			Return(page(&cursor1, firstCounts, "a", "b"), nil),
		mockAdapter.EXPECT().
			ListSnippets(gomock.Any(), models.ListQuery{Category: models.CategoryAll, Limit: 2, Cursor: &cursor1}).
			Return(page(nil, models.Counts{models.CategoryAll: 99}, "b", "c"), nil),
	)

	require.NoError(t, c.Reload(ctx))
	assert.True(t, c.HasNextPage())

	require.NoError(t, c.LoadMore(ctx))
	assert.Equal(t, []string{"a", "b", "c"}, ids(c.Items()), "duplicates across pages are dropped")
	assert.Equal(t, firstCounts, c.Counts(), "counts come from the first page only")
	assert.False(t, c.HasNextPage())

	assert.ErrorIs(t, c.LoadMore(ctx), ErrNoMorePages)
}

func TestListController_SetCategoryRestarts(t *testing.T) {
	c, mockAdapter := newTestListController(t, nil)
	ctx := context.Background()
	cursor := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mockAdapter.EXPECT().ListSnippets(gomock.Any(), gomock.Any()).Return(page(&cursor, nil, "a", "b"), nil)
	mockAdapter.EXPECT().
		ListSnippets(gomock.Any(), models.ListQuery{Category: models.CategoryButton, Limit: 2}).
		Return(page(nil, nil, "x"), nil)

	require.NoError(t, c.Reload(ctx))
	require.NoError(t, c.SetCategory(ctx, models.CategoryButton))

	assert.Equal(t, models.CategoryButton, c.Category())
	assert.Equal(t, []string{"x"}, ids(c.Items()))

	// same category again does not refetch
	require.NoError(t, c.SetCategory(ctx, models.CategoryButton))
}

func TestListController_MyWithoutSession(t *testing.T) {
	c, mockAdapter := newTestListController(t, nil)
	mockAdapter.EXPECT().ListSnippets(gomock.Any(), gomock.Any()).
		Return(models.ListResponse{}, adapter.NewHTTPError(http.StatusUnauthorized, "authentication required"))

	err := c.SetCategory(context.Background(), models.CategoryMy)

	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, c.Loading(), "a failed fetch releases the in-flight flag")
}

func TestListController_DebouncedSearch(t *testing.T) {
	done := make(chan error, 4)
	c, mockAdapter := newTestListController(t, func(err error) { done <- err })

	mockAdapter.EXPECT().
		ListSnippets(gomock.Any(), models.ListQuery{Category: models.CategoryAll, Search: "abc", Limit: 2}).
		Return(page(nil, nil, "hit"), nil).
		Times(1)

	c.SetSearch("a")
	c.SetSearch("ab")
	c.SetSearch("abc ")
	assert.Equal(t, "abc ", c.Search())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never ran")
	}

	assert.Equal(t, "abc", c.DebouncedSearch())
	assert.Equal(t, []string{"hit"}, ids(c.Items()))

	select {
	case <-done:
		t.Fatal("only the last search text may trigger a query")
	case <-time.After(3 * testDebounce):
	}
}

func TestListController_InFlightAndStaleResponses(t *testing.T) {
	c, mockAdapter := newTestListController(t, nil)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})

	mockAdapter.EXPECT().
		ListSnippets(gomock.Any(), models.ListQuery{Category: models.CategoryAll, Limit: 2}).
		DoAndReturn(func(context.Context, models.ListQuery) (models.ListResponse, error) {
			close(started)
			<-release
			return page(nil, nil, "stale"), nil
		})
	mockAdapter.EXPECT().
		ListSnippets(gomock.Any(), models.ListQuery{Category: models.CategoryCard, Limit: 2}).
		Return(page(nil, nil, "fresh"), nil)

	slow := make(chan error, 1)
	go func() { slow <- c.Reload(ctx) }()
	<-started

	assert.True(t, c.Loading())
	assert.ErrorIs(t, c.LoadMore(ctx), ErrFetchInFlight)

	// a key change starts a new generation even while the old fetch runs
	require.NoError(t, c.SetCategory(ctx, models.CategoryCard))
	close(release)
	require.NoError(t, <-slow)

	assert.Equal(t, []string{"fresh"}, ids(c.Items()), "the stale page is discarded")
}

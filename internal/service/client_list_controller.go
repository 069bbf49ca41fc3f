// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/models"
)

// ListController drives the client's snippet list.
//
// Pages are keyed by (category, debounced search). Changing either key bumps
// the generation, drops the accumulated pages and starts again from the first
// page; a response for an older generation is discarded when it arrives. Only
// one fetch runs per generation at a time.
type ListController struct {
	lister    SnippetLister
	debouncer *utils.Debouncer
	pageSize  int

	// onChange is called after a debounced search settles, with the
	// result of the fetch it started.
	onChange func(error)

	mu              sync.Mutex
	category        models.Category
	search          string
	debouncedSearch string
	generation      uint64
	pages           []models.ListResponse
	inFlight        bool

	logger *logger.Logger
}

func NewListController(lister SnippetLister, cfg config.Client, onChange func(error), logger *logger.Logger) *ListController {
	debounce := cfg.SearchDebounce
	if debounce <= 0 {
		debounce = config.DefaultSearchDebounce
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = config.DefaultClientPageSize
	}
	if onChange == nil {
		onChange = func(error) {}
	}

	return &ListController{
		lister:    lister,
		debouncer: utils.NewDebouncer(debounce),
		pageSize:  models.NormalizeLimit(pageSize),
		onChange:  onChange,
		category:  models.CategoryAll,
		logger:    logger,
	}
}

func (c *ListController) Category() models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.category
}

// Search returns the raw search text as typed.
func (c *ListController) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// DebouncedSearch returns the search text currently applied to queries.
func (c *ListController) DebouncedSearch() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.debouncedSearch
}

// SetCategory switches the category and loads its first page. Selecting the
// current category is a no-op.
func (c *ListController) SetCategory(ctx context.Context, category models.Category) error {
	if category == "" {
		category = models.CategoryAll
	}

	c.mu.Lock()
	if category == c.category && len(c.pages) > 0 {
		c.mu.Unlock()
		return nil
	}
	c.category = category
	c.mu.Unlock()

	return c.Reload(ctx)
}

// SetSearch records text and, after the quiet period, applies it and loads
// the first page. Only the last text typed within the period is applied.
func (c *ListController) SetSearch(text string) {
	c.mu.Lock()
	c.search = text
	c.mu.Unlock()

	c.debouncer.Trigger(func() {
		c.onChange(c.applySearch(context.Background(), text))
	})
}

func (c *ListController) applySearch(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)

	c.mu.Lock()
	if text == c.debouncedSearch && len(c.pages) > 0 {
		c.mu.Unlock()
		return nil
	}
	c.debouncedSearch = text
	c.mu.Unlock()

	return c.Reload(ctx)
}

// Reload discards the accumulated pages and fetches the first page for the
// current key.
func (c *ListController) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()

	return c.fetch(ctx, nil)
}

// LoadMore fetches the page after the last one loaded. It fails with
// ErrFetchInFlight while a fetch is running and with ErrNoMorePages when the
// last page carried no cursor.
func (c *ListController) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if len(c.pages) == 0 {
		c.mu.Unlock()
		return c.fetch(ctx, nil)
	}
	cursor := c.pages[len(c.pages)-1].NextCursor
	c.mu.Unlock()

	if cursor == nil {
		return ErrNoMorePages
	}
	return c.fetch(ctx, cursor)
}

func (c *ListController) fetch(ctx context.Context, cursor *time.Time) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrFetchInFlight
	}
	c.inFlight = true
	generation := c.generation
	query := models.ListQuery{
		Category: c.category,
		Search:   c.debouncedSearch,
		Limit:    c.pageSize,
		Cursor:   cursor,
	}
	c.mu.Unlock()

	page, err := c.lister.ListSnippets(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		// the key changed while this page was loading
		return nil
	}
	c.inFlight = false

	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrUnauthenticated) {
			c.logger.Debug().Str("category", query.Category.String()).Msg("list needs a session")
		}
		return err
	}

	c.pages = append(c.pages, page)
	return nil
}

// resetLocked starts a new generation. A fetch of the previous generation
// may still be running; it no longer blocks new fetches.
func (c *ListController) resetLocked() {
	c.generation++
	c.pages = nil
	c.inFlight = false
}

// Items returns the loaded snippets in order, each id at most once.
func (c *ListController) Items() []models.Snippet {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]struct{})
	items := make([]models.Snippet, 0, len(c.pages)*c.pageSize)
	for _, page := range c.pages {
		for _, s := range page.Snippets {
			if _, dup := seen[s.ID]; dup {
				continue
			}
			seen[s.ID] = struct{}{}
			items = append(items, s)
		}
	}
	return items
}

// Counts returns the first page's tally. Later pages do not refresh it.
func (c *ListController) Counts() models.Counts {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pages) == 0 {
		return models.Counts{}
	}
	return c.pages[0].Counts
}

// HasNextPage reports whether LoadMore can fetch another page.
func (c *ListController) HasNextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.inFlight && len(c.pages) > 0 && c.pages[len(c.pages)-1].NextCursor != nil
}

func (c *ListController) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Close drops a pending debounced search.
func (c *ListController) Close() {
	c.debouncer.Cancel()
}

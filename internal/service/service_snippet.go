// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/store"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/models"
)

// Mutation names passed to Recorder.SnippetMutated.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

type snippetService struct {
	snippetRepository store.SnippetRepository
	ids               IDGenerator
	recorder          Recorder
	now               func() time.Time

	logger *logger.Logger
}

func NewSnippetService(snippetRepository store.SnippetRepository, recorder Recorder, logger *logger.Logger) SnippetService {
	return &snippetService{
		snippetRepository: snippetRepository,
		ids:               utils.NewUUIDGenerator(),
		recorder:          recorderOrNop(recorder),
		now:               time.Now,
		logger:            logger,
	}
}

// List fetches one page and the category tallies. The page and the tallies
// are independent reads and run concurrently; they are not a consistent
// snapshot of each other.
//
// Tallies ignore the category filter and the cursor. counts[all] is the sum
// over every stored category, counts[my] is the caller's own total (0 for
// anonymous callers).
func (s *snippetService) List(ctx context.Context, caller string, query models.ListQuery) (models.ListResponse, error) {
	log := logger.FromContext(ctx)

	limit := models.NormalizeLimit(query.Limit)
	search := strings.TrimSpace(query.Search)

	filter := models.SnippetFilter{Search: search, Before: query.Cursor, Limit: limit}
	switch query.Category {
	case "", models.CategoryAll:
	case models.CategoryMy:
		if caller == "" {
			return models.ListResponse{}, ErrUnauthenticated
		}
		filter.OwnerID = caller
	default:
		filter.Category = query.Category
	}

	var (
		page       []models.Snippet
		byCategory models.Counts
		mine       int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page, err = s.snippetRepository.ListSnippets(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		byCategory, err = s.snippetRepository.CountSnippetsByCategory(gctx, search)
		return err
	})
	if caller != "" {
		g.Go(func() (err error) {
			mine, err = s.snippetRepository.CountSnippets(gctx, models.SnippetFilter{OwnerID: caller, Search: search})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Err(err).Str("func", "*snippetService.List").Any("filter", filter).Msg("error listing snippets")
		return models.ListResponse{}, fmt.Errorf("error listing snippets: %w", err)
	}

	resp := models.ListResponse{
		Snippets: page,
		Counts:   buildCounts(byCategory, mine),
	}
	if resp.Snippets == nil {
		resp.Snippets = []models.Snippet{}
	}
	// a full page may or may not be the last one
	if len(page) == limit {
		next := page[len(page)-1].CreatedAt
		resp.NextCursor = &next
	}

	return resp, nil
}

func buildCounts(byCategory models.Counts, mine int64) models.Counts {
	counts := make(models.Counts, len(byCategory)+2)
	var total int64
	for category, n := range byCategory {
		total += n
		if category == "" || category.IsVirtual() {
			continue
		}
		counts[category] = n
	}
	counts[models.CategoryAll] = total
	counts[models.CategoryMy] = mine
	return counts
}

func (s *snippetService) Get(ctx context.Context, id string) (models.Snippet, error) {
	if id == "" {
		return models.Snippet{}, store.ErrSnippetNotFound
	}

	snippet, err := s.snippetRepository.FindSnippetByID(ctx, id)
	if err != nil {
		return models.Snippet{}, fmt.Errorf("error getting snippet: %w", err)
	}
	return snippet, nil
}

func (s *snippetService) Create(ctx context.Context, caller string, in models.SnippetInput) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	if caller == "" {
		return models.Snippet{}, ErrUnauthenticated
	}
	if err := requireTitleAndCode(in); err != nil {
		return models.Snippet{}, err
	}
	if in.Category == "" {
		in.Category = models.CategoryEtc
	}

	now := s.now().UTC()
	snippet := models.Snippet{
		ID:        s.ids.Generate(),
		OwnerID:   caller,
		CreatedAt: now,
		UpdatedAt: now,
	}.Apply(in)

	created, err := s.snippetRepository.CreateSnippet(ctx, snippet)
	if err != nil {
		log.Err(err).Str("func", "*snippetService.Create").Str("owner", caller).Msg("error creating snippet")
		return models.Snippet{}, fmt.Errorf("error creating snippet: %w", err)
	}

	s.recorder.SnippetMutated(OpCreate)
	return created, nil
}

func (s *snippetService) Update(ctx context.Context, caller, id string, in models.SnippetInput) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	if caller == "" {
		return models.Snippet{}, ErrUnauthenticated
	}
	if err := requireTitleAndCode(in); err != nil {
		return models.Snippet{}, err
	}
	if in.Category == "" {
		in.Category = models.CategoryEtc
	}

	updated, err := s.snippetRepository.UpdateOwnedSnippet(ctx, models.Snippet{
		ID:        id,
		OwnerID:   caller,
		UpdatedAt: s.now().UTC(),
	}.Apply(in))
	if err != nil {
		if !errors.Is(err, store.ErrSnippetNotFound) {
			log.Err(err).Str("func", "*snippetService.Update").Str("id", id).Msg("error updating snippet")
		}
		return models.Snippet{}, fmt.Errorf("error updating snippet: %w", err)
	}

	s.recorder.SnippetMutated(OpUpdate)
	return updated, nil
}

func (s *snippetService) Delete(ctx context.Context, caller, id string) error {
	log := logger.FromContext(ctx)

	if caller == "" {
		return ErrUnauthenticated
	}

	if err := s.snippetRepository.DeleteOwnedSnippet(ctx, id, caller); err != nil {
		if !errors.Is(err, store.ErrSnippetNotFound) {
			log.Err(err).Str("func", "*snippetService.Delete").Str("id", id).Msg("error deleting snippet")
		}
		return fmt.Errorf("error deleting snippet: %w", err)
	}

	s.recorder.SnippetMutated(OpDelete)
	return nil
}

func requireTitleAndCode(in models.SnippetInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Code) == "" {
		return fmt.Errorf("%w: title and code are required", ErrValidation)
	}
	return nil
}

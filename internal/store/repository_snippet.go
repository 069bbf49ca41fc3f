// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/models"
)

// snippetRepository is the SQL implementation of [SnippetRepository].
//
// Updates and deletes carry the owner in the WHERE clause, so a caller can
// never tell "not yours" from "does not exist" and there is no window
// between an ownership check and the write.
type snippetRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSnippetRepository(db *DB, logger *logger.Logger) SnippetRepository {
	logger.Debug().Msg("creating snippet repository")
	return &snippetRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnippet(row rowScanner) (models.Snippet, error) {
	var s models.Snippet
	err := row.Scan(&s.ID, &s.OwnerID, &s.Title, &s.Description, &s.Category, &s.Code, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return models.Snippet{}, err
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

func (r *snippetRepository) CreateSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	snippet.CreatedAt = dbTime(snippet.CreatedAt)
	snippet.UpdatedAt = dbTime(snippet.UpdatedAt)

	query, args, err := buildCreateSnippetQuery(r.db.builder(), snippet)
	if err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*snippetRepository.CreateSnippet").
			Bool("retryable", r.db.classify(err) == Retryable).
			Msg("error inserting snippet")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return snippet, nil
}

func (r *snippetRepository) FindSnippetByID(ctx context.Context, id string) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSnippetQuery(r.db.builder(), id)
	if err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	snippet, err := scanSnippet(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Snippet{}, ErrSnippetNotFound
	case err != nil:
		log.Err(err).Str("func", "*snippetRepository.FindSnippetByID").Msg("error querying snippet")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return snippet, nil
}

func (r *snippetRepository) UpdateOwnedSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error) {
	log := logger.FromContext(ctx)

	snippet.UpdatedAt = dbTime(snippet.UpdatedAt)

	query, args, err := buildUpdateOwnedSnippetQuery(r.db.builder(), snippet)
	if err != nil {
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanSnippet(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Snippet{}, ErrSnippetNotFound
	case err != nil:
		log.Err(err).Str("func", "*snippetRepository.UpdateOwnedSnippet").Msg("error updating snippet")
		return models.Snippet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *snippetRepository) DeleteOwnedSnippet(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOwnedSnippetQuery(r.db.builder(), id, ownerID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.DeleteOwnedSnippet").Msg("error deleting snippet")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSnippetNotFound
	}

	return nil
}

func (r *snippetRepository) ListSnippets(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSnippetsQuery(r.db.builder(), r.db.dialect, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.ListSnippets").Msg("error listing snippets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snippets := make([]models.Snippet, 0, max(filter.Limit, 0))
	for rows.Next() {
		s, scanErr := scanSnippet(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*snippetRepository.ListSnippets").Msg("error scanning snippet")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		snippets = append(snippets, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snippets, nil
}

func (r *snippetRepository) CountSnippets(ctx context.Context, filter models.SnippetFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountSnippetsQuery(r.db.builder(), r.db.dialect, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*snippetRepository.CountSnippets").Msg("error counting snippets")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *snippetRepository) CountSnippetsByCategory(ctx context.Context, search string) (models.Counts, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByCategoryQuery(r.db.builder(), r.db.dialect, search)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snippetRepository.CountSnippetsByCategory").Msg("error counting snippets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(models.Counts)
	for rows.Next() {
		var (
			category models.Category
			count    int64
		)
		if err = rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[category] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

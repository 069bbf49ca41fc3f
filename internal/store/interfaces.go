// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-snippet-box/models"
)

// UserRepository is the Credential Store.
type UserRepository interface {
	// CreateUser inserts a user. Returns [ErrAccountAlreadyExists] on a
	// duplicate account id, leaving the existing record untouched.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByAccountID returns [ErrNoUserWasFound] when absent.
	FindUserByAccountID(ctx context.Context, accountID string) (models.User, error)
}

// SnippetRepository is the Snippet Store.
type SnippetRepository interface {
	CreateSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error)
	FindSnippetByID(ctx context.Context, id string) (models.Snippet, error)
	// UpdateOwnedSnippet updates the record matching both snippet.ID and
	// snippet.OwnerID and returns the stored result.
	UpdateOwnedSnippet(ctx context.Context, snippet models.Snippet) (models.Snippet, error)
	// DeleteOwnedSnippet deletes the record matching both id and ownerID.
	DeleteOwnedSnippet(ctx context.Context, id, ownerID string) error
	// ListSnippets returns at most filter.Limit records, newest first.
	ListSnippets(ctx context.Context, filter models.SnippetFilter) ([]models.Snippet, error)
	// CountSnippets counts records matching filter's owner and search.
	CountSnippets(ctx context.Context, filter models.SnippetFilter) (int64, error)
	// CountSnippetsByCategory counts records per category for a search text.
	CountSnippetsByCategory(ctx context.Context, search string) (models.Counts, error)
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// ErrorClassification classifies a driver error.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures such as lost connections or deadlocks.
	Retryable
	// UniqueViolation marks a unique or primary key constraint failure.
	UniqueViolation
)

// ErrorClassificator classifies driver-specific errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

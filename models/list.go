// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Page size bounds for snippet listing.
const (
	DefaultPageSize = 12
	MaxPageSize     = 50
)

// ListQuery holds the parameters of GET /snippets.
//
// Category "all" or empty applies no category filter, "my" restricts to the
// caller's snippets. Cursor, when set, restricts to snippets created strictly
// before it.
type ListQuery struct {
	Category Category
	Search   string
	Cursor   *time.Time
	Limit    int
}

// NormalizeLimit clamps a requested page size into [1, MaxPageSize],
// using DefaultPageSize for non-positive values.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	return min(limit, MaxPageSize)
}

// Counts maps a category (plus "all" and "my") to a number of snippets.
type Counts map[Category]int64

// ListResponse is the body of GET /snippets.
//
// NextCursor is set only when the page came back full, so a caller may see
// one trailing empty page.
type ListResponse struct {
	Snippets   []Snippet  `json:"snippets"`
	Counts     Counts     `json:"counts"`
	NextCursor *time.Time `json:"nextCursor"`
}

// SnippetFilter is the storage-level predicate built from a [ListQuery].
type SnippetFilter struct {
	// OwnerID restricts to one owner when non-empty.
	OwnerID string
	// Category restricts to one stored category when non-empty.
	Category Category
	// Search is a case-insensitive title substring when non-empty.
	Search string
	// Before restricts to CreatedAt strictly earlier than it when set.
	Before *time.Time
	Limit  int
}

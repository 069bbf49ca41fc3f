// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Field limits for a snippet, counted in characters (runes).
const (
	MaxTitleLength       = 40
	MaxDescriptionLength = 160
	MaxCodeLength        = 8000
)

// Snippet is a stored UI code snippet.
//
// Title and Code are never empty for a persisted record. OwnerID and CreatedAt
// never change after creation; UpdatedAt moves only on a successful update.
type Snippet struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Code        string    `json:"code"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Snippet model.
func (s Snippet) TableName() string {
	return "snippets"
}

// SnippetInput is the body of POST /snippets and PUT /snippets/{id}.
type SnippetInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Code        string   `json:"code"`
}

// Apply copies the mutable fields of in onto s.
func (s Snippet) Apply(in SnippetInput) Snippet {
	s.Title = in.Title
	s.Description = in.Description
	s.Category = in.Category
	s.Code = in.Code
	return s
}

// Input returns the mutable fields of s.
func (s Snippet) Input() SnippetInput {
	return SnippetInput{
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Code:        s.Code,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PreviewBundle is the set of static files handed to the sandbox widget
// that renders a snippet.
type PreviewBundle struct {
	SnippetID string            `json:"snippetId"`
	Template  string            `json:"template"`
	Files     map[string]string `json:"files"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-snippet-box/models"
)

// ClientAuthService signs the terminal user up, in and out through the
// server adapter.
type ClientAuthService interface {
	// Signup checks the form locally (including that password and confirm
	// match) before creating the account. It does not open a session.
	Signup(ctx context.Context, creds models.Credentials, confirm string) error

	// Login opens a session and returns the signed-in user.
	Login(ctx context.Context, creds models.Credentials) (models.PublicUser, error)

	Logout(ctx context.Context) error

	// CurrentUser returns the session's user, or nil when anonymous.
	CurrentUser(ctx context.Context) (*models.PublicUser, error)
}

// ClientSnippetService reads and mutates snippets through the server
// adapter. Inputs are validated locally before they are submitted.
type ClientSnippetService interface {
	Get(ctx context.Context, id string) (models.Snippet, error)
	Create(ctx context.Context, in models.SnippetInput) (models.Snippet, error)
	Update(ctx context.Context, id string, in models.SnippetInput) (models.Snippet, error)
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, id string) (models.PreviewBundle, error)
	Categories(ctx context.Context) ([]models.Category, error)
	ServerVersion(ctx context.Context) (string, error)
}

// SnippetLister fetches one page of the snippet list.
type SnippetLister interface {
	ListSnippets(ctx context.Context, q models.ListQuery) (models.ListResponse, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the snippet-box server on behalf of the
// terminal client.
//
// [ServerAdapter] hides the REST transport from the client services. Non-2xx
// answers are mapped to the sentinel errors in errors.go, so callers match
// them with [errors.Is] and read the server's message with [ServerMessage].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-snippet-box/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the snippet-box REST API.
type ServerAdapter interface {
	// Token returns the session token captured at login, or "".
	Token() string

	// Signup creates an account. It does not sign the user in.
	Signup(ctx context.Context, creds models.Credentials) error

	// Login opens a session. The session cookie is kept in the adapter's
	// cookie jar and the bearer token is remembered for later requests.
	Login(ctx context.Context, creds models.Credentials) error

	// Logout ends the session on the server and forgets the local token.
	Logout(ctx context.Context) error

	// Me returns the signed-in user, or nil for an anonymous session.
	Me(ctx context.Context) (*models.PublicUser, error)

	ListSnippets(ctx context.Context, q models.ListQuery) (models.ListResponse, error)
	GetSnippet(ctx context.Context, id string) (models.Snippet, error)
	CreateSnippet(ctx context.Context, in models.SnippetInput) (models.Snippet, error)
	UpdateSnippet(ctx context.Context, id string, in models.SnippetInput) (models.Snippet, error)
	DeleteSnippet(ctx context.Context, id string) error

	// Preview fetches the sandbox bundle for a snippet.
	Preview(ctx context.Context, id string) (models.PreviewBundle, error)

	// Categories returns the server's category catalogue.
	Categories(ctx context.Context) ([]models.Category, error)

	// ServerVersion returns the plain-text version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}

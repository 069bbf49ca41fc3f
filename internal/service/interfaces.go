// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-snippet-box/models"
)

// AuthService issues and verifies sessions and checks credentials.
type AuthService interface {
	// Register stores a new account. Returns store.ErrAccountAlreadyExists
	// when the account id is taken.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	// VerifyCredential returns the account when the secret matches and
	// ErrWrongCredentials otherwise.
	VerifyCredential(ctx context.Context, creds models.Credentials) (models.User, error)
	IssueSession(ctx context.Context, accountID string) (models.Token, error)
	// ResolveCaller never fails: an absent, malformed or expired token
	// resolves to ("", false).
	ResolveCaller(ctx context.Context, token string) (string, bool)
}

// SnippetService is the query engine and the mutation service. An empty
// caller means an anonymous request.
type SnippetService interface {
	List(ctx context.Context, caller string, query models.ListQuery) (models.ListResponse, error)
	Get(ctx context.Context, id string) (models.Snippet, error)
	Create(ctx context.Context, caller string, in models.SnippetInput) (models.Snippet, error)
	// Update and Delete match on both id and caller. A snippet owned by
	// someone else is reported as store.ErrSnippetNotFound.
	Update(ctx context.Context, caller, id string, in models.SnippetInput) (models.Snippet, error)
	Delete(ctx context.Context, caller, id string) error
}

// SnippetServiceWrapper decorates a SnippetService.
type SnippetServiceWrapper interface {
	Wrap(SnippetService) SnippetService
}

// PreviewService builds the static file bundle handed to the sandbox.
type PreviewService interface {
	Bundle(ctx context.Context, id string) (models.PreviewBundle, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

// Recorder receives domain events worth counting.
type Recorder interface {
	SnippetMutated(op string)
	PreviewCacheLookup(hit bool)
}

type nopRecorder struct{}

func (nopRecorder) SnippetMutated(string)   {}
func (nopRecorder) PreviewCacheLookup(bool) {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

// IDGenerator produces snippet identifiers.
type IDGenerator interface {
	Generate() string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-snippet-box/models"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	findFn   func(ctx context.Context, accountID string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByAccountID(ctx context.Context, accountID string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, accountID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock SnippetRepository
// ─────────────────────────────────────────────

type mockSnippetRepository struct {
	createFn     func(ctx context.Context, s models.Snippet) (models.Snippet, error)
	findFn       func(ctx context.Context, id string) (models.Snippet, error)
	updateFn     func(ctx context.Context, s models.Snippet) (models.Snippet, error)
	deleteFn     func(ctx context.Context, id, ownerID string) error
	listFn       func(ctx context.Context, f models.SnippetFilter) ([]models.Snippet, error)
	countFn      func(ctx context.Context, f models.SnippetFilter) (int64, error)
	countByCatFn func(ctx context.Context, search string) (models.Counts, error)
}

func (m *mockSnippetRepository) CreateSnippet(ctx context.Context, s models.Snippet) (models.Snippet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return s, nil
}

func (m *mockSnippetRepository) FindSnippetByID(ctx context.Context, id string) (models.Snippet, error) {
	if m.findFn != nil {
		return m.findFn(ctx, id)
	}
	return models.Snippet{ID: id}, nil
}

func (m *mockSnippetRepository) UpdateOwnedSnippet(ctx context.Context, s models.Snippet) (models.Snippet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return s, nil
}

func (m *mockSnippetRepository) DeleteOwnedSnippet(ctx context.Context, id, ownerID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, ownerID)
	}
	return nil
}

func (m *mockSnippetRepository) ListSnippets(ctx context.Context, f models.SnippetFilter) ([]models.Snippet, error) {
	if m.listFn != nil {
		return m.listFn(ctx, f)
	}
	return nil, nil
}

func (m *mockSnippetRepository) CountSnippets(ctx context.Context, f models.SnippetFilter) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx, f)
	}
	return 0, nil
}

func (m *mockSnippetRepository) CountSnippetsByCategory(ctx context.Context, search string) (models.Counts, error) {
	if m.countByCatFn != nil {
		return m.countByCatFn(ctx, search)
	}
	return models.Counts{}, nil
}

// ─────────────────────────────────────────────
// Mock Recorder
// ─────────────────────────────────────────────

type mockRecorder struct {
	mu        sync.Mutex
	mutations []string
	hits      int
	misses    int
}

func (m *mockRecorder) SnippetMutated(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations = append(m.mutations, op)
}

func (m *mockRecorder) PreviewCacheLookup(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.hits++
		return
	}
	m.misses++
}

// ─────────────────────────────────────────────
// Mock SnippetService
// ─────────────────────────────────────────────

type mockSnippetService struct {
	listFn   func(ctx context.Context, caller string, q models.ListQuery) (models.ListResponse, error)
	getFn    func(ctx context.Context, id string) (models.Snippet, error)
	createFn func(ctx context.Context, caller string, in models.SnippetInput) (models.Snippet, error)
	updateFn func(ctx context.Context, caller, id string, in models.SnippetInput) (models.Snippet, error)
	deleteFn func(ctx context.Context, caller, id string) error
}

func (m *mockSnippetService) List(ctx context.Context, caller string, q models.ListQuery) (models.ListResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, caller, q)
	}
	return models.ListResponse{}, nil
}

func (m *mockSnippetService) Get(ctx context.Context, id string) (models.Snippet, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Snippet{}, nil
}

func (m *mockSnippetService) Create(ctx context.Context, caller string, in models.SnippetInput) (models.Snippet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, caller, in)
	}
	return models.Snippet{}.Apply(in), nil
}

func (m *mockSnippetService) Update(ctx context.Context, caller, id string, in models.SnippetInput) (models.Snippet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, caller, id, in)
	}
	return models.Snippet{ID: id}.Apply(in), nil
}

func (m *mockSnippetService) Delete(ctx context.Context, caller, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, caller, id)
	}
	return nil
}

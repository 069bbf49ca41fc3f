// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/models"
)

type fakeAuth struct {
	current   *models.PublicUser
	loginUser models.PublicUser
	loginErr  error
	signupErr error
	logoutErr error
	loggedOut bool
}

func (f *fakeAuth) Signup(context.Context, models.Credentials, string) error { return f.signupErr }

func (f *fakeAuth) Login(context.Context, models.Credentials) (models.PublicUser, error) {
	return f.loginUser, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = f.logoutErr == nil
	return f.logoutErr
}

func (f *fakeAuth) CurrentUser(context.Context) (*models.PublicUser, error) { return f.current, nil }

type fakeSnippets struct {
	snippet models.Snippet
	err     error
	bundle  models.PreviewBundle
	created []models.SnippetInput
	updated []string
	deleted []string
}

func (f *fakeSnippets) Get(context.Context, string) (models.Snippet, error) { return f.snippet, f.err }

func (f *fakeSnippets) Create(_ context.Context, in models.SnippetInput) (models.Snippet, error) {
	f.created = append(f.created, in)
	return f.snippet, f.err
}

func (f *fakeSnippets) Update(_ context.Context, id string, _ models.SnippetInput) (models.Snippet, error) {
	f.updated = append(f.updated, id)
	return f.snippet, f.err
}

func (f *fakeSnippets) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeSnippets) Preview(context.Context, string) (models.PreviewBundle, error) {
	return f.bundle, f.err
}

func (f *fakeSnippets) Categories(context.Context) ([]models.Category, error) {
	return models.Categories, nil
}

func (f *fakeSnippets) ServerVersion(context.Context) (string, error) { return "1.2.3", nil }

type fakeLister struct {
	category   models.Category
	items      []models.Snippet
	counts     models.Counts
	next       bool
	err        error
	categories []models.Category
	searches   []string
	reloads    int
	loadMores  int
}

func (f *fakeLister) Category() models.Category { return f.category }

func (f *fakeLister) SetCategory(_ context.Context, c models.Category) error {
	f.category = c
	f.categories = append(f.categories, c)
	return f.err
}

func (f *fakeLister) SetSearch(text string) { f.searches = append(f.searches, text) }

func (f *fakeLister) Reload(context.Context) error {
	f.reloads++
	return f.err
}

func (f *fakeLister) LoadMore(context.Context) error {
	f.loadMores++
	return f.err
}

func (f *fakeLister) Items() []models.Snippet { return f.items }
func (f *fakeLister) Counts() models.Counts   { return f.counts }
func (f *fakeLister) HasNextPage() bool       { return f.next }
func (f *fakeLister) Loading() bool           { return false }

type testDeps struct {
	store    *state.Store
	auth     *fakeAuth
	snippets *fakeSnippets
	lister   *fakeLister
}

func newTestDeps() *testDeps {
	return &testDeps{
		store:    state.NewStore(state.Initial()),
		auth:     &fakeAuth{},
		snippets: &fakeSnippets{},
		lister:   &fakeLister{category: models.CategoryAll},
	}
}

func (d *testDeps) signIn(accountID string) {
	d.store.Dispatch(state.SetUser{User: models.PublicUser{AccountID: accountID}})
}

func (d *testDeps) root() RootModel {
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageList:   NewListModel(ctx, d.store, d.lister, d.auth, d.snippets),
		pageDetail: NewDetailModel(ctx, d.store, d.snippets),
		pageEditor: NewEditorModel(ctx, d.store, d.snippets),
		pageLogin:  NewLoginModel(ctx, d.store, d.auth),
		pageSignup: NewSignupModel(ctx, d.auth),
	}
	return NewRootModel(ctx, d.store, d.auth, d.snippets, pages, pageList, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
}

// collect runs cmd and returns the messages it produces, expanding batches.
// Commands that wait on timers (ticks, cursor blinks) are dropped.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(t, c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

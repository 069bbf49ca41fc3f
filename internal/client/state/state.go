// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state is the terminal client's application-state store.
//
// All shared client state (selected category, search text, category counts,
// signed-in user, open modal and the toast line) lives in one [State] value.
// It changes only through typed actions passed to [Store.Dispatch], which
// runs [Reduce] and notifies subscribers with the new state.
package state

import (
	"maps"
	"time"

	"github.com/MKhiriev/go-snippet-box/models"
)

type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalCreate
	ModalUpdate
)

// Modal is the editor dialog currently open, if any. SnippetID is set for
// ModalUpdate only.
type Modal struct {
	Kind      ModalKind
	SnippetID string
}

// Toast is a transient status line. Seq increases with every toast so a
// delayed clear can tell whether it still refers to the toast on screen.
type Toast struct {
	Text  string
	Error bool
	Seq   uint64
	At    time.Time
}

type State struct {
	Category models.Category
	Search   string
	Counts   models.Counts
	User     *models.PublicUser
	Modal    Modal
	Toast    Toast
}

// Initial is the state of a fresh client: anonymous, browsing all snippets.
func Initial() State {
	return State{
		Category: models.CategoryAll,
		Counts:   models.Counts{},
	}
}

// SignedIn reports whether a user is set.
func (s State) SignedIn() bool {
	return s.User != nil
}

// Owns reports whether the signed-in user owns snippet.
func (s State) Owns(snippet models.Snippet) bool {
	return s.User != nil && s.User.AccountID == snippet.OwnerID
}

func (s State) clone() State {
	s.Counts = maps.Clone(s.Counts)
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

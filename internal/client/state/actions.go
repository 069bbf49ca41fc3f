// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"maps"
	"time"

	"github.com/MKhiriev/go-snippet-box/models"
)

// Action is a typed state change accepted by [Store.Dispatch].
type Action interface {
	isAction()
}

type (
	SetCategory struct{ Category models.Category }
	SetSearch   struct{ Text string }
	SetCounts   struct{ Counts models.Counts }
	SetUser     struct{ User models.PublicUser }
	ClearUser   struct{}
	OpenModal   struct {
		Kind      ModalKind
		SnippetID string
	}
	CloseModal struct{}
	ShowToast  struct {
		Text  string
		Error bool
	}
	// ClearToast removes the toast only if it is still toast Seq.
	ClearToast struct{ Seq uint64 }
)

func (SetCategory) isAction() {}
func (SetSearch) isAction()   {}
func (SetCounts) isAction()   {}
func (SetUser) isAction()     {}
func (ClearUser) isAction()   {}
func (OpenModal) isAction()   {}
func (CloseModal) isAction()  {}
func (ShowToast) isAction()   {}
func (ClearToast) isAction()  {}

// Reduce returns the state that results from applying a to s. It never
// modifies s. Unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	s = s.clone()

	switch a := a.(type) {
	case SetCategory:
		if a.Category == "" {
			a.Category = models.CategoryAll
		}
		s.Category = a.Category
	case SetSearch:
		s.Search = a.Text
	case SetCounts:
		s.Counts = maps.Clone(a.Counts)
		if s.Counts == nil {
			s.Counts = models.Counts{}
		}
	case SetUser:
		u := a.User
		s.User = &u
	case ClearUser:
		s.User = nil
		// "my" means nothing without a user
		if s.Category == models.CategoryMy {
			s.Category = models.CategoryAll
		}
		if s.Modal.Kind != ModalNone {
			s.Modal = Modal{}
		}
	case OpenModal:
		s.Modal = Modal{Kind: a.Kind, SnippetID: a.SnippetID}
		if a.Kind != ModalUpdate {
			s.Modal.SnippetID = ""
		}
	case CloseModal:
		s.Modal = Modal{}
	case ShowToast:
		s.Toast = Toast{Text: a.Text, Error: a.Error, Seq: s.Toast.Seq + 1, At: time.Now()}
	case ClearToast:
		if s.Toast.Seq == a.Seq {
			s.Toast.Text = ""
			s.Toast.Error = false
		}
	}

	return s
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/models"
)

// Page names accepted by NavigateTo.
const (
	pageList   = "list"
	pageDetail = "detail"
	pageEditor = "editor"
	pageLogin  = "login"
	pageSignup = "signup"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page as a message right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// listChangedMsg reports the end of a list fetch, including fetches started
// by the search debouncer outside the Bubble Tea loop.
type listChangedMsg struct {
	err error
}

// reloadListMsg asks the list page to resynchronise with the store and
// fetch its first page again. It is routed to the list page whichever page
// is active.
type reloadListMsg struct{}

type categoriesLoadedMsg struct {
	categories []models.Category
	err        error
}

type userLoadedMsg struct {
	user *models.PublicUser
	err  error
}

type serverVersionMsg struct {
	version string
	err     error
}

type loginResultMsg struct {
	user models.PublicUser
	err  error
}

type signupResultMsg struct {
	accountID string
	err       error
}

type logoutResultMsg struct {
	err error
}

// prefillLoginMsg opens the login page with the account id filled in.
type prefillLoginMsg struct {
	accountID string
}

// snippetOpenedMsg opens the detail page on snippet.
type snippetOpenedMsg struct {
	snippet models.Snippet
}

type snippetLoadedMsg struct {
	snippet models.Snippet
	err     error
}

// editorOpenMsg opens the editor. A nil snippet means a new one.
type editorOpenMsg struct {
	snippet *models.Snippet
}

type snippetSavedMsg struct {
	snippet models.Snippet
	created bool
	err     error
}

type snippetDeletedMsg struct {
	id  string
	err error
}

type previewSavedMsg struct {
	dir string
	err error
}

type copiedMsg struct {
	err error
}

type toastMsg struct {
	text  string
	error bool
}

type clearToastMsg struct {
	seq uint64
}

// sessionExpiredMsg is produced when the server answers 401 outside login.
type sessionExpiredMsg struct{}

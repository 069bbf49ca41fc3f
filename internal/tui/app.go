// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/models"
)

const toastTTL = 3 * time.Second

// RootModel is the TUI router:
//  1. keeps the active page
//  2. handles the global ctrl+c quit and the build info window
//  3. handles NavigateTo messages
//  4. shows toasts and redirects to login when the session expires
//  5. delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	store    *state.Store
	auth     service.ClientAuthService
	snippets service.ClientSnippetService

	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool

	logger *logger.Logger
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(
	ctx context.Context,
	store *state.Store,
	auth service.ClientAuthService,
	snippets service.ClientSnippetService,
	pages map[string]tea.Model,
	startPage string,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) RootModel {
	return RootModel{
		ctx:       ctx,
		store:     store,
		auth:      auth,
		snippets:  snippets,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdCurrentUser(), r.cmdServerVersion()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.buildInfoAllowed() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()

	case listChangedMsg, reloadListMsg:
		// the list page keeps loading while other pages are open
		return r, r.updatePage(pageList, msg)

	case toastMsg:
		st := r.store.Dispatch(state.ShowToast{Text: msg.text, Error: msg.error})
		seq := st.Toast.Seq
		return r, tea.Tick(toastTTL, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })

	case clearToastMsg:
		r.store.Dispatch(state.ClearToast{Seq: msg.seq})
		return r, nil

	case sessionExpiredMsg:
		r.logger.Info().Msg("session expired, redirecting to login")
		r.store.Dispatch(state.ClearUser{}, state.CloseModal{})
		return r, tea.Batch(
			toast("Your session has expired, please log in again", true),
			navigate(pageLogin, nil),
			func() tea.Msg { return reloadListMsg{} },
		)

	case userLoadedMsg:
		if msg.err != nil {
			r.logger.Err(msg.err).Msg("failed to restore session")
			return r, errorCmd(msg.err)
		}
		if msg.user != nil {
			r.store.Dispatch(state.SetUser{User: *msg.user})
		}
		return r, nil

	case serverVersionMsg:
		if msg.err != nil {
			r.logger.Err(msg.err).Msg("failed to get server version")
			return r, nil
		}
		r.serverVersion = msg.version
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.serverVersion))
	}

	body := renderPage("SNIPPET BOX", "", "")
	if r.current != nil {
		body = r.current.View()
	}

	if t := r.store.State().Toast; t.Text != "" {
		style := okStyle
		if t.Error {
			style = errorStyle
		}
		body += "\n\n  " + style.Render(t.Text)
	}

	return appStyle.Render(body)
}

// updatePage delivers msg to a page that may not be active.
func (r RootModel) updatePage(name string, msg tea.Msg) tea.Cmd {
	page, ok := r.pages[name]
	if !ok {
		return nil
	}
	// pages are pointers, so the active page sees the change too
	_, cmd := page.Update(msg)
	return cmd
}

// buildInfoAllowed reports whether "v" may open the build info window, which
// is only on the list page while no text field is focused.
func (r RootModel) buildInfoAllowed() bool {
	list, ok := r.current.(*ListModel)
	return ok && !list.searching
}

func (r RootModel) cmdCurrentUser() tea.Cmd {
	ctx := r.ctx
	auth := r.auth
	return func() tea.Msg {
		user, err := auth.CurrentUser(ctx)
		return userLoadedMsg{user: user, err: err}
	}
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	snippets := r.snippets
	return func() tea.Msg {
		version, err := snippets.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/models"
)

const listTitleWidth = 40

// Lister is the part of the list controller the list page drives.
type Lister interface {
	Category() models.Category
	SetCategory(ctx context.Context, category models.Category) error
	SetSearch(text string)
	Reload(ctx context.Context) error
	LoadMore(ctx context.Context) error
	Items() []models.Snippet
	Counts() models.Counts
	HasNextPage() bool
	Loading() bool
}

// ListModel is the home page: category tabs with counts, the search field
// and the accumulated snippet pages.
type ListModel struct {
	ctx      context.Context
	store    *state.Store
	list     Lister
	auth     service.ClientAuthService
	snippets service.ClientSnippetService

	catalogue []models.Category
	search    textinput.Model
	searching bool
	spinner   spinner.Model
	loading   bool
	idx       int
}

func NewListModel(
	ctx context.Context,
	store *state.Store,
	list Lister,
	auth service.ClientAuthService,
	snippets service.ClientSnippetService,
) *ListModel {
	search := textinput.New()
	search.Placeholder = "search titles"
	search.CharLimit = models.MaxTitleLength
	search.Width = 40
	search.Prompt = "/ "

	return &ListModel{
		ctx:       ctx,
		store:     store,
		list:      list,
		auth:      auth,
		snippets:  snippets,
		catalogue: slices.Clone(models.Categories),
		search:    search,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init loads the first page and the server's category catalogue.
func (m *ListModel) Init() tea.Cmd {
	if m.loading || len(m.list.Items()) > 0 {
		return nil
	}
	return tea.Batch(m.startFetch(m.cmdReload()), m.cmdCategories())
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listChangedMsg:
		m.loading = m.list.Loading()
		m.store.Dispatch(state.SetCounts{Counts: m.list.Counts()})
		m.clampCursor()
		if msg.err != nil && !ignorableListError(msg.err) {
			return m, errorCmd(msg.err)
		}
		return m, nil

	case reloadListMsg:
		m.idx = 0
		return m, m.startFetch(m.cmdSyncAndReload())

	case categoriesLoadedMsg:
		if msg.err == nil && len(msg.categories) > 0 {
			m.catalogue = msg.categories
		}
		return m, nil

	case logoutResultMsg:
		if msg.err != nil {
			return m, errorCmd(msg.err)
		}
		m.store.Dispatch(state.ClearUser{})
		m.idx = 0
		return m, tea.Batch(toast("Logged out", false), m.startFetch(m.cmdSyncAndReload()))

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m *ListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if text := m.search.Value(); text != before {
		m.store.Dispatch(state.SetSearch{Text: text})
		m.list.SetSearch(text)
		m.idx = 0
	}
	return m, cmd
}

func (m *ListModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.list.Items()
	st := m.store.State()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.loadMore):
		if m.list.HasNextPage() && !m.loading {
			return m, m.startFetch(m.cmdLoadMore())
		}
	case key.Matches(msg, keys.reload):
		m.idx = 0
		return m, m.startFetch(m.cmdReload())
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		return m, m.selectCategory(1)
	case key.Matches(msg, keys.left), key.Matches(msg, keys.backtab):
		return m, m.selectCategory(-1)
	case key.Matches(msg, keys.enter):
		if m.idx < len(items) {
			return m, navigate(pageDetail, snippetOpenedMsg{snippet: items[m.idx]})
		}
	case key.Matches(msg, keys.newItem):
		if !st.SignedIn() {
			return m, tea.Batch(toast("Log in to add snippets", true), navigate(pageLogin, nil))
		}
		m.store.Dispatch(state.OpenModal{Kind: state.ModalCreate})
		return m, navigate(pageEditor, editorOpenMsg{})
	case key.Matches(msg, keys.account):
		if st.SignedIn() {
			return m, m.cmdLogout()
		}
		return m, navigate(pageLogin, nil)
	case key.Matches(msg, keys.signup):
		if !st.SignedIn() {
			return m, navigate(pageSignup, nil)
		}
	}

	return m, nil
}

func (m *ListModel) View() string {
	st := m.store.State()
	var b strings.Builder

	b.WriteString(m.renderTabs(st))
	b.WriteString("\n\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	items := m.list.Items()
	if len(items) == 0 && !m.loading {
		b.WriteString("No snippets found\n")
	}

	for i, s := range items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-*s │ %-9s │ %s\n",
			cursor, listTitleWidth, fitText(s.Title, listTitleWidth), s.Category, s.OwnerID))
	}

	switch {
	case m.loading:
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...\n")
	case m.list.HasNextPage():
		b.WriteString("\nm: load more\n")
	}

	user := "anonymous"
	if st.User != nil {
		user = st.User.AccountID
	}
	b.WriteString("\nSigned in as: ")
	b.WriteString(user)

	return renderPage("SNIPPETS", b.String(), m.hotKeys(st))
}

func (m *ListModel) hotKeys(st state.State) string {
	if m.searching {
		return hotKeys("enter/esc: done")
	}
	parts := []string{"←/→: category", "↑/↓: move", "enter: open", "/: search", "r: reload"}
	if st.SignedIn() {
		parts = append(parts, "n: new", "L: log out")
	} else {
		parts = append(parts, "L: log in", "S: sign up")
	}
	return hotKeys(append(parts, "v: version", "q: quit")...)
}

// tabs lists the filters offered: all, my when signed in, then the catalogue.
func (m *ListModel) tabs(st state.State) []models.Category {
	out := []models.Category{models.CategoryAll}
	if st.SignedIn() {
		out = append(out, models.CategoryMy)
	}
	return append(out, m.catalogue...)
}

func (m *ListModel) renderTabs(st state.State) string {
	tabs := m.tabs(st)
	rendered := make([]string, 0, len(tabs))
	for _, c := range tabs {
		label := fmt.Sprintf("%s (%d)", c, st.Counts[c])
		if c == st.Category {
			rendered = append(rendered, activeTabStyle.Render(label))
		} else {
			rendered = append(rendered, tabStyle.Render(label))
		}
	}
	return strings.Join(rendered, "  ")
}

func (m *ListModel) selectCategory(step int) tea.Cmd {
	st := m.store.State()
	tabs := m.tabs(st)

	i := slices.Index(tabs, st.Category)
	if i < 0 {
		i = 0
	}
	next := tabs[(i+step+len(tabs))%len(tabs)]

	m.store.Dispatch(state.SetCategory{Category: next})
	m.idx = 0
	return m.startFetch(m.cmdSetCategory(next))
}

func (m *ListModel) startFetch(fetch tea.Cmd) tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, fetch)
}

func (m *ListModel) clampCursor() {
	n := len(m.list.Items())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *ListModel) cmdSetCategory(category models.Category) tea.Cmd {
	ctx := m.ctx
	list := m.list
	return func() tea.Msg {
		return listChangedMsg{err: list.SetCategory(ctx, category)}
	}
}

func (m *ListModel) cmdReload() tea.Cmd {
	ctx := m.ctx
	list := m.list
	return func() tea.Msg {
		return listChangedMsg{err: list.Reload(ctx)}
	}
}

// cmdSyncAndReload applies the store's category, which a logout or expired
// session may have changed, and fetches the first page again.
func (m *ListModel) cmdSyncAndReload() tea.Cmd {
	ctx := m.ctx
	list := m.list
	category := m.store.State().Category
	return func() tea.Msg {
		if list.Category() != category {
			return listChangedMsg{err: list.SetCategory(ctx, category)}
		}
		return listChangedMsg{err: list.Reload(ctx)}
	}
}

func (m *ListModel) cmdLoadMore() tea.Cmd {
	ctx := m.ctx
	list := m.list
	return func() tea.Msg {
		return listChangedMsg{err: list.LoadMore(ctx)}
	}
}

func (m *ListModel) cmdCategories() tea.Cmd {
	ctx := m.ctx
	snippets := m.snippets
	return func() tea.Msg {
		categories, err := snippets.Categories(ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m *ListModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return logoutResultMsg{err: auth.Logout(ctx)}
	}
}

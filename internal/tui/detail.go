// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/models"
)

const detailCodeLines = 30

var (
	defaultClipboardWrite = clipboard.WriteAll
	// clipboardWrite is replaced in tests.
	clipboardWrite = defaultClipboardWrite
)

// DetailModel shows one snippet. Its owner may edit or delete it; anybody
// may copy the code or export the preview bundle.
type DetailModel struct {
	ctx      context.Context
	store    *state.Store
	snippets service.ClientSnippetService

	snippet    models.Snippet
	confirming bool
	busy       bool
}

func NewDetailModel(ctx context.Context, store *state.Store, snippets service.ClientSnippetService) *DetailModel {
	return &DetailModel{
		ctx:      ctx,
		store:    store,
		snippets: snippets,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snippetOpenedMsg:
		m.snippet = msg.snippet
		m.confirming = false
		m.busy = false
		return m, m.cmdRefresh(msg.snippet.ID)

	case snippetLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSnippetNotFound) {
				return m, tea.Batch(toast("The snippet no longer exists", true), m.backToList(true))
			}
			return m, errorCmd(msg.err)
		}
		if msg.snippet.ID == m.snippet.ID {
			m.snippet = msg.snippet
		}
		return m, nil

	case snippetDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m, errorCmd(msg.err)
		}
		return m, tea.Batch(toast("Snippet deleted", false), m.backToList(true))

	case copiedMsg:
		if msg.err != nil {
			return m, toast("Copy failed: "+msg.err.Error(), true)
		}
		return m, toast("Code copied to clipboard", false)

	case previewSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m, errorCmd(msg.err)
		}
		return m, toast("Preview files written to "+msg.dir, false)

	case tea.KeyMsg:
		if m.confirming {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DetailModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		m.busy = true
		return m, m.cmdDelete(m.snippet.ID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirming = false
	}
	return m, nil
}

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	owner := m.store.State().Owns(m.snippet)

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m, m.backToList(false)
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.snippet.Code)
	case key.Matches(msg, keys.preview):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdPreview(m.snippet.ID)
	case key.Matches(msg, keys.edit):
		if !owner {
			return m, nil
		}
		snippet := m.snippet
		m.store.Dispatch(state.OpenModal{Kind: state.ModalUpdate, SnippetID: snippet.ID})
		return m, navigate(pageEditor, editorOpenMsg{snippet: &snippet})
	case key.Matches(msg, keys.delete):
		if owner && !m.busy {
			m.confirming = true
		}
	}
	return m, nil
}

func (m *DetailModel) View() string {
	s := m.snippet
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Title       │ %s\n", valueOrDash(s.Title)))
	b.WriteString(fmt.Sprintf("Category    │ %s\n", valueOrDash(s.Category.String())))
	b.WriteString(fmt.Sprintf("Owner       │ %s\n", valueOrDash(s.OwnerID)))
	b.WriteString(fmt.Sprintf("Created     │ %s\n", formatTime(s.CreatedAt)))
	b.WriteString(fmt.Sprintf("Updated     │ %s\n", formatTime(s.UpdatedAt)))
	b.WriteString(fmt.Sprintf("Description │ %s\n\n", valueOrDash(s.Description)))

	code, hidden := firstLines(s.Code, detailCodeLines)
	b.WriteString(codeBoxStyle.Render(code))
	if hidden > 0 {
		b.WriteString(fmt.Sprintf("\n... %s not shown, copy to see all", plural(int64(hidden), "line", "lines")))
	}

	if m.confirming {
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete %q? y: yes │ n: no", s.Title)))
	}

	parts := []string{"esc: back", "c: copy code", "p: preview"}
	if m.store.State().Owns(s) {
		parts = append(parts, "e: edit", "d: delete")
	}
	return renderPage("SNIPPET", b.String(), hotKeys(parts...))
}

// backToList returns to the list page, reloading it when the snippet set
// changed.
func (m *DetailModel) backToList(reload bool) tea.Cmd {
	if reload {
		return navigate(pageList, reloadListMsg{})
	}
	return navigate(pageList, nil)
}

func (m *DetailModel) cmdRefresh(id string) tea.Cmd {
	ctx := m.ctx
	snippets := m.snippets
	return func() tea.Msg {
		snippet, err := snippets.Get(ctx, id)
		return snippetLoadedMsg{snippet: snippet, err: err}
	}
}

func (m *DetailModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	snippets := m.snippets
	return func() tea.Msg {
		return snippetDeletedMsg{id: id, err: snippets.Delete(ctx, id)}
	}
}

func (m *DetailModel) cmdPreview(id string) tea.Cmd {
	ctx := m.ctx
	snippets := m.snippets
	return func() tea.Msg {
		bundle, err := snippets.Preview(ctx, id)
		if err != nil {
			return previewSavedMsg{err: err}
		}
		dir, err := writePreviewBundle(bundle)
		return previewSavedMsg{dir: dir, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

// writePreviewBundle writes the bundle files into a fresh temporary
// directory so they can be opened in a browser or a sandbox tool. Paths are
// rooted at the directory; ".." cannot leave it.
func writePreviewBundle(bundle models.PreviewBundle) (string, error) {
	dir, err := os.MkdirTemp("", "snippet-preview-*")
	if err != nil {
		return "", fmt.Errorf("create preview dir: %w", err)
	}

	for name, content := range bundle.Files {
		rel := filepath.Clean(string(filepath.Separator) + filepath.FromSlash(name))
		if rel == string(filepath.Separator) {
			continue
		}
		target := filepath.Join(dir, rel)
		if err = os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
			return "", fmt.Errorf("create preview dir for %s: %w", name, err)
		}
		if err = os.WriteFile(target, []byte(content), 0o600); err != nil {
			return "", fmt.Errorf("write preview file %s: %w", name, err)
		}
	}

	return dir, nil
}

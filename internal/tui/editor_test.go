// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-snippet-box/internal/adapter"
	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

func newTestEditor(d *testDeps) *EditorModel {
	return NewEditorModel(context.Background(), d.store, d.snippets)
}

func TestEditorModel_Open(t *testing.T) {
	d := newTestDeps()
	m := newTestEditor(d)

	_, _ = m.Update(editorOpenMsg{snippet: &models.Snippet{
		ID:       "s1",
		Title:    "Card",
		Category: models.CategoryCard,
		Code:     "<div/>",
	}})

	in := m.input()
	assert.Equal(t, "Card", in.Title)
	assert.Equal(t, models.CategoryCard, in.Category)
	assert.Equal(t, "<div/>", in.Code)
	assert.Contains(t, m.View(), "EDIT SNIPPET")

	_, _ = m.Update(editorOpenMsg{})
	assert.Equal(t, models.SnippetInput{Category: models.CategoryEtc}, m.input(), "a new snippet starts empty")
	assert.Contains(t, m.View(), "NEW SNIPPET")
}

func TestEditorModel_ValidatesFieldOnBlur(t *testing.T) {
	m := newTestEditor(newTestDeps())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldDescription, m.focus)
	assert.Contains(t, m.fieldErrs, validators.FieldTitle)

	m.title.SetValue("Fixed")
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.NotContains(t, m.fieldErrs, validators.FieldTitle)
}

func TestEditorModel_CategoryCycle(t *testing.T) {
	m := newTestEditor(newTestDeps())
	m.setFocus(fieldCategory)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.CategoryButton, m.input().Category, "etc wraps to the first category")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.CategoryEtc, m.input().Category)
}

func TestEditorModel_Create(t *testing.T) {
	d := newTestDeps()
	d.snippets.snippet = models.Snippet{ID: "new", Title: "Toggle"}
	d.store.Dispatch(state.OpenModal{Kind: state.ModalCreate})
	m := newTestEditor(d)
	m.title.SetValue("Toggle")
	m.code.SetValue("<input type=checkbox>")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, m.submitting)

	saved, ok := findMsg[snippetSavedMsg](collect(t, cmd))
	require.True(t, ok)
	assert.True(t, saved.created)
	require.Len(t, d.snippets.created, 1)
	assert.Equal(t, "Toggle", d.snippets.created[0].Title)

	_, cmd = m.Update(saved)
	msgs := collect(t, cmd)

	assert.Equal(t, state.ModalNone, d.store.State().Modal.Kind)
	nav, ok := findMsg[NavigateTo](msgs)
	require.True(t, ok)
	assert.Equal(t, pageDetail, nav.Page)
	_, ok = findMsg[reloadListMsg](msgs)
	assert.True(t, ok)
}

func TestEditorModel_UpdateErrors(t *testing.T) {
	d := newTestDeps()
	m := newTestEditor(d)
	_, _ = m.Update(editorOpenMsg{snippet: &models.Snippet{ID: "s1", Title: "T", Code: "c"}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	collect(t, cmd)
	assert.Equal(t, []string{"s1"}, d.snippets.updated)

	serverErr := fmt.Errorf("%w: %w", service.ErrValidation, adapter.NewHTTPError(400, "title is too long"))
	_, cmd = m.Update(snippetSavedMsg{err: serverErr})
	assert.Nil(t, cmd)
	assert.Equal(t, "title is too long", m.errMsg)
	assert.False(t, m.submitting)

	_, cmd = m.Update(snippetSavedMsg{err: service.ErrUnauthenticated})
	_, ok := findMsg[sessionExpiredMsg](collect(t, cmd))
	assert.True(t, ok)
}

func TestEditorModel_Cancel(t *testing.T) {
	d := newTestDeps()
	d.store.Dispatch(state.OpenModal{Kind: state.ModalUpdate, SnippetID: "s1"})
	m := newTestEditor(d)
	_, _ = m.Update(editorOpenMsg{snippet: &models.Snippet{ID: "s1"}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	nav, ok := findMsg[NavigateTo](collect(t, cmd))
	require.True(t, ok)
	assert.Equal(t, pageDetail, nav.Page)
	assert.Equal(t, state.ModalNone, d.store.State().Modal.Kind)
}

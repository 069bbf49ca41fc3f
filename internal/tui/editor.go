// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

// Editor fields in focus order.
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldCode
	fieldCount
)

var editorFieldNames = [fieldCount]string{
	fieldTitle:       validators.FieldTitle,
	fieldDescription: validators.FieldDescription,
	fieldCategory:    validators.FieldCategory,
	fieldCode:        validators.FieldCode,
}

// EditorModel creates a snippet or edits one the user owns. Each field is
// checked when focus leaves it; the whole input is checked again on save.
type EditorModel struct {
	ctx       context.Context
	store     *state.Store
	snippets  service.ClientSnippetService
	validator validators.Validator

	editing     *models.Snippet
	title       textinput.Model
	description textinput.Model
	categoryIdx int
	code        textarea.Model
	focus       int

	fieldErrs  map[string]string
	submitting bool
	errMsg     string
}

func NewEditorModel(ctx context.Context, store *state.Store, snippets service.ClientSnippetService) *EditorModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = models.MaxTitleLength
	title.Width = models.MaxTitleLength

	description := textinput.New()
	description.Placeholder = "description"
	description.CharLimit = models.MaxDescriptionLength
	description.Width = 60

	code := textarea.New()
	code.Placeholder = "component code"
	code.CharLimit = models.MaxCodeLength
	code.SetWidth(80)
	code.SetHeight(12)

	m := &EditorModel{
		ctx:         ctx,
		store:       store,
		snippets:    snippets,
		validator:   validators.NewSnippetValidator(),
		title:       title,
		description: description,
		code:        code,
	}
	m.open(nil)
	return m
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorOpenMsg:
		m.open(msg.snippet)
		return m, nil

	case snippetSavedMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrUnauthenticated) {
				return m, errorCmd(msg.err)
			}
			m.errMsg = humanizeError(msg.err)
			m.collectFieldErrors(msg.err)
			return m, nil
		}
		m.store.Dispatch(state.CloseModal{})
		text := "Snippet saved"
		if msg.created {
			text = "Snippet created"
		}
		return m, tea.Batch(
			toast(text, false),
			navigate(pageDetail, snippetOpenedMsg{snippet: msg.snippet}),
			func() tea.Msg { return reloadListMsg{} },
		)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, m.cancel()
		case key.Matches(msg, keys.save):
			return m, m.submit()
		case key.Matches(msg, keys.tab):
			return m, m.setFocus(m.focus + 1)
		case key.Matches(msg, keys.backtab):
			return m, m.setFocus(m.focus - 1)
		}
		if m.focus == fieldCategory {
			switch {
			case key.Matches(msg, keys.left), key.Matches(msg, keys.up):
				m.cycleCategory(-1)
			case key.Matches(msg, keys.right), key.Matches(msg, keys.down):
				m.cycleCategory(1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldCode:
		m.code, cmd = m.code.Update(msg)
	}
	return m, cmd
}

func (m *EditorModel) View() string {
	var b strings.Builder

	b.WriteString("Title       │ ")
	b.WriteString(m.title.View())
	m.writeFieldError(&b, validators.FieldTitle)
	b.WriteString("\nDescription │ ")
	b.WriteString(m.description.View())
	m.writeFieldError(&b, validators.FieldDescription)
	b.WriteString("\nCategory    │ ")
	b.WriteString(m.renderCategory())
	m.writeFieldError(&b, validators.FieldCategory)
	b.WriteString("\n\nCode")
	m.writeFieldError(&b, validators.FieldCode)
	b.WriteString(fmt.Sprintf(" (%d/%d)\n", len([]rune(m.code.Value())), models.MaxCodeLength))
	b.WriteString(m.code.View())
	b.WriteString("\n")

	b.WriteString(submitLabel("Save", m.submitting))
	writeFormError(&b, m.errMsg)

	title := "NEW SNIPPET"
	if m.editing != nil {
		title = "EDIT SNIPPET"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		hotKeys("esc: cancel", "tab: next field", "←/→: category", "ctrl+s: save"))
}

// open resets the form, filling it from snippet when one is edited.
func (m *EditorModel) open(snippet *models.Snippet) {
	m.editing = snippet
	m.fieldErrs = map[string]string{}
	m.submitting = false
	m.errMsg = ""

	in := models.SnippetInput{Category: models.CategoryEtc}
	if snippet != nil {
		in = snippet.Input()
	}
	m.title.SetValue(in.Title)
	m.description.SetValue(in.Description)
	m.code.SetValue(in.Code)
	m.categoryIdx = max(slices.Index(models.Categories, in.Category), 0)
	if in.Category == "" {
		m.categoryIdx = slices.Index(models.Categories, models.CategoryEtc)
	}

	m.focus = fieldTitle
	m.title.Focus()
	m.description.Blur()
	m.code.Blur()
}

func (m *EditorModel) input() models.SnippetInput {
	return models.SnippetInput{
		Title:       m.title.Value(),
		Description: m.description.Value(),
		Category:    models.Categories[m.categoryIdx],
		Code:        m.code.Value(),
	}
}

// setFocus validates the field being left and focuses field i.
func (m *EditorModel) setFocus(i int) tea.Cmd {
	m.validateField(m.focus)

	m.focus = (i%fieldCount + fieldCount) % fieldCount
	m.title.Blur()
	m.description.Blur()
	m.code.Blur()

	switch m.focus {
	case fieldTitle:
		return m.title.Focus()
	case fieldDescription:
		return m.description.Focus()
	case fieldCode:
		return m.code.Focus()
	}
	return nil
}

func (m *EditorModel) validateField(field int) {
	name := editorFieldNames[field]
	delete(m.fieldErrs, name)
	if err := m.validator.Validate(m.ctx, m.input(), name); err != nil {
		m.collectFieldErrors(err)
	}
}

func (m *EditorModel) collectFieldErrors(err error) {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return
	}
	for name, fieldErr := range fieldErrs {
		if fieldErr != nil {
			m.fieldErrs[name] = fieldErr.Error()
		}
	}
}

func (m *EditorModel) cycleCategory(step int) {
	n := len(models.Categories)
	m.categoryIdx = (m.categoryIdx + step + n) % n
}

func (m *EditorModel) renderCategory() string {
	label := "< " + models.Categories[m.categoryIdx].String() + " >"
	if m.focus == fieldCategory {
		return activeTabStyle.Render(label)
	}
	return label
}

func (m *EditorModel) writeFieldError(b *strings.Builder, name string) {
	if msg, ok := m.fieldErrs[name]; ok {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(msg))
	}
}

func (m *EditorModel) cancel() tea.Cmd {
	m.store.Dispatch(state.CloseModal{})
	if m.editing != nil {
		return navigate(pageDetail, nil)
	}
	return navigate(pageList, nil)
}

func (m *EditorModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	m.fieldErrs = map[string]string{}
	m.submitting = true

	ctx := m.ctx
	snippets := m.snippets
	in := m.input()

	if m.editing == nil {
		return func() tea.Msg {
			saved, err := snippets.Create(ctx, in)
			return snippetSavedMsg{snippet: saved, created: true, err: err}
		}
	}

	id := m.editing.ID
	return func() tea.Msg {
		saved, err := snippets.Update(ctx, id, in)
		return snippetSavedMsg{snippet: saved, err: err}
	}
}

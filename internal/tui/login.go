// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/client/state"
	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/internal/validators"
	"github.com/MKhiriev/go-snippet-box/models"
)

// LoginModel is the login form. On success the user is stored and the list
// page is reloaded, since "my" and ownership depend on who is signed in.
type LoginModel struct {
	ctx   context.Context
	store *state.Store
	auth  service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, store *state.Store, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:    ctx,
		store:  store,
		auth:   auth,
		inputs: []textinput.Model{accountIDInput(), passwordInput("password")},
	}
}

func accountIDInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "account id"
	in.CharLimit = validators.MaxAccountIDLength
	in.Width = 40
	in.Focus()
	return in
}

func passwordInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = validators.MaxPasswordLength
	in.Width = 40
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - prefillLoginMsg: fills the account id after signup
//   - loginResultMsg: stores the user or shows the error
//   - esc: back to the list, ctrl+u: to signup
//   - tab/shift+tab: focus, enter: submit
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case prefillLoginMsg:
		m.reset()
		m.inputs[0].SetValue(msg.accountID)
		m.setFocus(1)
		return m, nil

	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		m.store.Dispatch(state.SetUser{User: msg.user})
		return m, tea.Batch(
			toast("Logged in as "+msg.user.AccountID, false),
			navigate(pageList, reloadListMsg{}),
		)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, navigate(pageList, nil)
		case key.Matches(msg, keys.toSignup):
			m.reset()
			return m, navigate(pageSignup, nil)
		case key.Matches(msg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(models.Credentials{
				AccountID: strings.TrimSpace(m.inputs[0].Value()),
				Password:  m.inputs[1].Value(),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────────────\n")
	b.WriteString("Account id │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nPassword   │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	b.WriteString(submitLabel("Log in", m.submitting))
	writeFormError(&b, m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"),
		hotKeys("esc: back", "tab: next field", "enter: submit", "ctrl+u: sign up"))
}

func (m *LoginModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		user, err := auth.Login(ctx, creds)
		return loginResultMsg{user: user, err: err}
	}
}

func (m *LoginModel) setFocus(i int) {
	m.focus = focusInputs(m.inputs, m.focus, i)
}

func (m *LoginModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(0)
	m.submitting = false
	m.errMsg = ""
}

// focusInputs moves focus from current to next, wrapping around, and
// returns the new index.
func focusInputs(inputs []textinput.Model, current, next int) int {
	next = (next%len(inputs) + len(inputs)) % len(inputs)
	inputs[current].Blur()
	inputs[next].Focus()
	return next
}

func submitLabel(label string, submitting bool) string {
	if submitting {
		return "\n[" + label + "...]\n"
	}
	return "\n[" + label + "]\n"
}

func writeFormError(b *strings.Builder, msg string) {
	if msg == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(errorStyle.Render("Error: " + msg))
	b.WriteString("\n")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/service"
	"github.com/MKhiriev/go-snippet-box/models"
)

// SignupModel is the account creation form. Signing up does not open a
// session; on success the login page opens with the account id filled in.
type SignupModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth service.ClientAuthService) *SignupModel {
	return &SignupModel{
		ctx:  ctx,
		auth: auth,
		inputs: []textinput.Model{
			accountIDInput(),
			passwordInput("password"),
			passwordInput("repeat password"),
		},
	}
}

func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signupResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, tea.Batch(
			toast("Account "+msg.accountID+" created, log in to continue", false),
			navigate(pageLogin, prefillLoginMsg{accountID: msg.accountID}),
		)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, navigate(pageList, nil)
		case key.Matches(msg, keys.toLogin):
			m.reset()
			return m, navigate(pageLogin, nil)
		case key.Matches(msg, keys.tab):
			m.focus = focusInputs(m.inputs, m.focus, m.focus+1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focus = focusInputs(m.inputs, m.focus, m.focus-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(models.Credentials{
				AccountID: strings.TrimSpace(m.inputs[0].Value()),
				Password:  m.inputs[1].Value(),
			}, m.inputs[2].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SignupModel) View() string {
	var b strings.Builder
	b.WriteString("Field           │ Value\n")
	b.WriteString("────────────────┼────────────────────────────────────────────\n")
	b.WriteString("Account id      │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nPassword        │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\nRepeat password │ ")
	b.WriteString(m.inputs[2].View())
	b.WriteString("\n")

	b.WriteString(submitLabel("Sign up", m.submitting))
	writeFormError(&b, m.errMsg)

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"),
		hotKeys("esc: back", "tab: next field", "enter: submit", "ctrl+l: log in"))
}

func (m *SignupModel) cmdSignup(creds models.Credentials, confirm string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		err := auth.Signup(ctx, creds, confirm)
		return signupResultMsg{accountID: creds.AccountID, err: err}
	}
}

func (m *SignupModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focus = focusInputs(m.inputs, m.focus, 0)
	m.submitting = false
	m.errMsg = ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-snippet-box/internal/service"
)

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func toast(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text, error: isError} }
}

// errorCmd reports err to the user. An unauthenticated error means the
// session is gone, so it becomes a redirect to the login page instead.
func errorCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	if errors.Is(err, service.ErrUnauthenticated) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	return toast(humanizeError(err), true)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the Bubble Tea terminal interface of the snippet box.
//
// [RootModel] routes between pages (list, detail, editor, login, signup)
// in response to [NavigateTo] messages and owns the cross-page concerns:
// the toast line, the build info window and the redirect to the login page
// when the session expires. Shared state lives in a state.Store that every
// page reads and dispatches to.
package tui

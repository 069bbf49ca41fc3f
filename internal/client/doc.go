// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI to the application-state store (package state)
// and runs it until the user quits or the process is signalled.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the snippet-box HTTP server.
//
// RunServer blocks until the context is cancelled, a termination signal
// arrives or the listener fails, then drains in-flight requests within the
// configured shutdown timeout.
package server

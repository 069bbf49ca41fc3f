// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and validates configuration for the
// snippet-box server and terminal client.
//
// Sources, from highest to lowest precedence:
//  1. Environment variables (optionally loaded from .env)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Use [GetStructuredConfig] in the server and [GetClientConfig] in the client.
package config

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON API of the snippet box.
//
// Routes are wired on a chi router. Every request gets a trace id, an access
// log line and a metrics observation. API routes additionally go through
// CORS, gzip, a request timeout and session resolution: the session
// middleware never rejects a request, it only puts the caller's account id
// into the context when the session cookie (or bearer token) is valid.
// Mutating snippet routes are grouped behind requireCaller, which answers
// 401 when no caller was resolved.
//
// Errors from the service layer are mapped to statuses by statusFromError
// and written as {"message": "..."} bodies.
package http

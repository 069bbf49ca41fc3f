// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared across layers: context keys,
// session cookies, JWT handling, JSON responses, the HTTP client,
// identifier generation and the debouncer.
package utils

import (
	"context"
)

// contextKey prevents collisions with context keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey stores the resolved caller's account id.
var AccountIDCtxKey = contextKey("accountID")

// WithAccountID returns a copy of ctx carrying accountID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}

// GetAccountIDFromContext returns the caller's account id. ok is false when
// the request has no session, which is a normal state.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok && accountID != ""
}

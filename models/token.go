// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session JWT.
//
// The "sub" claim carries the account identifier the session is bound to.
// Sessions are never persisted server-side; expiry is the only revocation.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form stored in the session cookie.
	SignedString string `json:"-"`

	// AccountID is a cached copy of the subject claim.
	AccountID string `json:"-"`
}

// GetAccountID returns the account identifier from the subject claim.
func (t *Token) GetAccountID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting account id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting account id from token: empty subject")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

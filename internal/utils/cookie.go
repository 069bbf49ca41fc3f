// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/http"
	"time"
)

// SessionCookieName is the name of the cookie holding the session token.
const SessionCookieName = "token"

// ErrNoSessionToken is returned when a request carries no session token.
var ErrNoSessionToken = errors.New("no session token")

// NewSessionCookie builds the HTTP-only, SameSite=Lax session cookie.
func NewSessionCookie(token string, maxAge time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredSessionCookie builds a cookie that makes the browser drop the session.
func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionTokensFromRequest returns the session tokens a request carries, the
// cookie first and then an Authorization bearer token for non-browser
// clients. Callers try them in order, so a stale cookie does not hide a
// valid bearer token.
func SessionTokensFromRequest(r *http.Request) ([]string, error) {
	var tokens []string
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		tokens = append(tokens, c.Value)
	}

	if header := r.Header.Get("Authorization"); header != "" {
		if token, err := ParseBearerToken(header); err == nil {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) == 0 {
		return nil, ErrNoSessionToken
	}
	return tokens, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-snippet-box/internal/app"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
)

// withSession resolves the caller from the session cookie or, failing that,
// the bearer token. It never rejects: without a valid session the request
// continues anonymously.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokens, err := utils.SessionTokensFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		var (
			accountID string
			ok        bool
		)
		for _, token := range tokens {
			if accountID, ok = h.services.AuthService.ResolveCaller(ctx, token); ok {
				break
			}
		}
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("account_id", accountID)
		})

		ctx = utils.WithAccountID(log.WithContext(ctx), accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireCaller answers 401 unless withSession resolved a caller.
func (h *Handler) requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetAccountIDFromContext(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("no session for protected route")
			utils.WriteMessage(w, app.MsgAuthenticationRequired, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

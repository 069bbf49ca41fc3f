// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-snippet-box/internal/app"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&creds); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("accountId", user.AccountID).Msg("account created")
	utils.WriteMessage(w, app.MsgSignedUp, http.StatusCreated)
}

// login verifies credentials and stores the session token in an HTTP-only
// cookie. The token is also returned as a bearer Authorization header for
// clients without a cookie jar.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&creds); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.VerifyCredential(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueSession(ctx, user.AccountID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, utils.NewSessionCookie(token.SignedString, h.tokenDuration, h.cookieSecure))
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteMessage(w, app.MsgLoggedIn, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, utils.ExpiredSessionCookie(h.cookieSecure))
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	resp := models.MeResponse{}
	if accountID, ok := utils.GetAccountIDFromContext(r.Context()); ok {
		resp.User = &models.PublicUser{AccountID: accountID}
	}
	utils.WriteJSON(w, resp, http.StatusOK)
}

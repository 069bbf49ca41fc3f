// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-snippet-box/internal/app"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/models"
)

// listSnippets serves GET /snippets?category&search&limit&cursor.
// A non-numeric limit falls back to the default page size and an
// unparsable cursor is ignored.
func (h *Handler) listSnippets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utils.GetAccountIDFromContext(ctx)

	resp, err := h.services.SnippetService.List(ctx, caller, parseListQuery(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func parseListQuery(r *http.Request) models.ListQuery {
	q := r.URL.Query()

	query := models.ListQuery{
		Category: models.Category(strings.TrimSpace(q.Get("category"))),
		Search:   q.Get("search"),
	}

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		query.Limit = limit
	}

	if raw := q.Get("cursor"); raw != "" {
		if cursor, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			query.Cursor = &cursor
		} else {
			logger.FromRequest(r).Debug().Str("cursor", raw).Msg("ignoring unparsable cursor")
		}
	}

	return query
}

func (h *Handler) getSnippet(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.services.SnippetService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, snippet, http.StatusOK)
}

func (h *Handler) createSnippet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utils.GetAccountIDFromContext(ctx)

	in, ok := decodeSnippetInput(w, r)
	if !ok {
		return
	}

	snippet, err := h.services.SnippetService.Create(ctx, caller, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", snippet.ID).Msg("snippet created")
	utils.WriteJSON(w, snippet, http.StatusCreated)
}

func (h *Handler) updateSnippet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utils.GetAccountIDFromContext(ctx)

	in, ok := decodeSnippetInput(w, r)
	if !ok {
		return
	}

	snippet, err := h.services.SnippetService.Update(ctx, caller, chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, snippet, http.StatusOK)
}

func (h *Handler) deleteSnippet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, _ := utils.GetAccountIDFromContext(ctx)
	id := chi.URLParam(r, "id")

	if err := h.services.SnippetService.Delete(ctx, caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", id).Msg("snippet deleted")
	utils.WriteMessage(w, app.MsgDeleted, http.StatusOK)
}

func (h *Handler) previewSnippet(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.services.PreviewService.Bundle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, bundle, http.StatusOK)
}

func (h *Handler) categories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.CategoriesResponse{Categories: models.Categories}, http.StatusOK)
}

func decodeSnippetInput(w http.ResponseWriter, r *http.Request) (models.SnippetInput, bool) {
	var in models.SnippetInput
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		logger.FromRequest(r).Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return models.SnippetInput{}, false
	}
	return in, true
}

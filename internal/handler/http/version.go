// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/models"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports 503 when the database does not answer a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := models.HealthResponse{
		Status:  healthStatusOK,
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}

	if err := h.services.AppInfoService.Ping(ctx); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		resp.Status = healthStatusUnavailable
		utils.WriteJSON(w, resp, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

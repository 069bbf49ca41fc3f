// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-snippet-box/models"
)

// WriteJSON serializes data and writes it with statusCode and
// Content-Type application/json. On marshal failure it answers 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a {"message": msg} body.
func WriteMessage(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, models.MessageResponse{Message: msg}, statusCode)
}

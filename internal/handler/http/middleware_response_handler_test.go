// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-snippet-box/internal/logger"
)

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := wrapResponseWriter(rr)

		assert.Equal(t, http.StatusOK, w.Status())
		w.Write([]byte("hello"))

		assert.Equal(t, http.StatusOK, w.Status())
		assert.Equal(t, 5, w.size)
	})

	t.Run("first status wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := wrapResponseWriter(rr)

		w.WriteHeader(http.StatusNotFound)
		w.WriteHeader(http.StatusOK)

		assert.Equal(t, http.StatusNotFound, w.Status())
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unwrap", func(t *testing.T) {
		rr := httptest.NewRecorder()
		assert.Same(t, rr, wrapResponseWriter(rr).Unwrap())
	})
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	handler := h.withTraceID(h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("abc"))
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/snippets/1", nil))

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"method":"PUT"`)
	assert.Contains(t, out, `"uri":"/snippets/1"`)
	assert.Contains(t, out, `"size":3`)
}

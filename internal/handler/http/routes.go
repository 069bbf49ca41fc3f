// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-snippet-box/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, middleware.RealIP)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	// preflight requests never reach a route, so CORS cannot live in a group
	router.Use(h.withCORS())

	if h.metrics != nil {
		// promhttp negotiates its own compression
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	router.Get("/healthz", h.health)
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(h.withSession)

		r.Get("/categories", h.categories)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
			r.Get("/me", h.me)
		})

		r.Route("/snippets", func(r chi.Router) {
			r.Get("/", h.listSnippets)
			r.Get("/{id}", h.getSnippet)
			r.Get("/{id}/preview", h.previewSnippet)

			r.Group(func(r chi.Router) {
				r.Use(h.requireCaller)
				r.Post("/", h.createSnippet)
				r.Put("/{id}", h.updateSnippet)
				r.Delete("/{id}", h.deleteSnippet)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

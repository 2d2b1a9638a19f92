// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.index)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/uploads/{uploadID}", h.getUpload)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(h.maxUploadSize))
		r.Use(h.withUploadHash)
		r.Post("/upload", h.upload)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-music-upload/internal/logger"
)

// withLogging writes one access line per request. Uploads also carry the
// assigned upload id; failed requests are logged at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := newResponseWriter(w)

		next.ServeHTTP(lw, r)

		status := lw.statusOrOK()
		event := log.Info()
		if status >= http.StatusBadRequest {
			event = log.Warn()
		}
		if lw.uploadID != "" {
			event = event.Str("upload_id", lw.uploadID)
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int64("content_length", r.ContentLength).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedRequest runs one request through withLogging with a buffer-backed
// logger in the request context and returns the decoded access line.
func loggedRequest(t *testing.T, req *http.Request, next http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	h := &Handler{logger: logger.Nop()}
	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), buf.String())
	return rec, line
}

func TestWithLogging_AccessLine(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		target    string
		status    int
		body      string
		wantLevel string
	}{
		{"version", http.MethodGet, "/api/version", http.StatusOK, "1.0.0", "info"},
		{"upload lookup not found", http.MethodGet, "/api/uploads/x", http.StatusNotFound, "upload not found", "warn"},
		{"upload rejected", http.MethodPost, "/upload", http.StatusUnsupportedMediaType, "upload is not a valid zip archive", "warn"},
		{"server error", http.MethodPost, "/upload", http.StatusInternalServerError, "internal server error", "warn"},
		{"query kept in uri", http.MethodGet, "/api/version?verbose=1", http.StatusOK, "1.0.0", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)

			rec, line := loggedRequest(t, req, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, tt.method, line["method"])
			assert.Equal(t, tt.target, line["uri"])
			assert.EqualValues(t, tt.status, line["status"])
			assert.EqualValues(t, len(tt.body), line["size"])
			assert.Contains(t, line, "duration")
			assert.NotContains(t, line, "upload_id")
		})
	}
}

func TestWithLogging_UploadID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("body"))

	_, line := loggedRequest(t, req, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(uploadIDHeader, "upload-42")
		_, _ = w.Write([]byte(`{}`))
	})

	assert.Equal(t, "upload-42", line["upload_id"])
	assert.EqualValues(t, 4, line["content_length"])
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, line := loggedRequest(t, req, func(http.ResponseWriter, *http.Request) {})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, http.StatusOK, line["status"])
	assert.EqualValues(t, 0, line["size"])
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

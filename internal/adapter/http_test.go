// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/utils"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpServerAdapter {
	t.Helper()

	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	a, err := NewHTTPServerAdapter(cfg, hashKey, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── Upload ──────────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	data := []byte("PK\x03\x04 archive body")
	want := models.UploadResult{
		UploadID: "upload-1",
		UnpackSummary: models.UnpackSummary{
			Written: []models.WrittenFile{{Entry: "a.mp3", Path: "A/B/1 - T.mp3", Kind: "mp3"}},
			Skipped: []models.SkippedEntry{{Entry: "cover.jpg", Reason: models.SkipNotAudio}},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)
		assert.Equal(t, utils.UserAgent, r.UserAgent())
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-ID"))
		assert.Equal(t, utils.NewHasher(testHashKey).SumHex(data), r.Header.Get("HashSHA256"))

		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			defer file.Close()
			assert.Equal(t, "music.zip", header.Filename)
			assert.Equal(t, "application/zip", header.Header.Get("Content-Type"))
			body, _ := io.ReadAll(file)
			assert.Equal(t, data, body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	ctx := utils.WithTraceID(context.Background(), "trace-1")

	got, err := a.Upload(ctx, models.Upload{FileName: "music.zip", Data: data})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpload_NoHashHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("HashSHA256"))
		assert.Empty(t, r.Header.Get("X-Trace-ID"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"upload_id":"u","written":[],"skipped":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Upload(context.Background(), models.Upload{FileName: "a.zip", Data: []byte("PK")})

	require.NoError(t, err)
	assert.Equal(t, "u", got.UploadID)
}

func TestUpload_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, "no file part in request", ErrBadRequest},
		{"conflict", http.StatusConflict, "destination already exists", ErrConflict},
		{"too large", http.StatusRequestEntityTooLarge, "upload too large", ErrRequestTooLarge},
		{"unsupported media type", http.StatusUnsupportedMediaType, "invalid zip archive", ErrUnsupportedMediaType},
		{"unprocessable", http.StatusUnprocessableEntity, "unsafe destination path", ErrUnprocessableEntity},
		{"internal", http.StatusInternalServerError, "internal server error", ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.Upload(context.Background(), models.Upload{FileName: "a.zip", Data: []byte("PK")})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.body)
		})
	}
}

func TestUpload_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Upload(context.Background(), models.Upload{FileName: "a.zip", Data: []byte("PK")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestUpload_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, "")
	_, err := a.Upload(context.Background(), models.Upload{FileName: "a.zip", Data: []byte("PK")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload request")
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestVersion_NotImplemented(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotImplemented)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrNotImplemented)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, "", logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"listen-all host", "0.0.0.0:8080", "http://127.0.0.1:8080", false},
		{"surrounding spaces", "  localhost:8080 ", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

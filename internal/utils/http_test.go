// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-music-upload/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:   "upload result",
			status: http.StatusOK,
			data: models.UploadResult{
				UploadID: "id-1",
				UnpackSummary: models.UnpackSummary{
					Written: []models.WrittenFile{{Entry: "a.mp3", Path: "A/B/1 - T.mp3", Kind: "mp3"}},
					Skipped: []models.SkippedEntry{{Entry: "cover.jpg", Reason: models.SkipNotAudio}},
				},
			},
			wantBody: `{"upload_id":"id-1","written":[{"entry":"a.mp3","path":"A/B/1 - T.mp3","kind":"mp3"}],` +
				`"skipped":[{"entry":"cover.jpg","reason":"not_audio"}]}`,
		},
		{
			name:     "empty summary keeps arrays",
			status:   http.StatusOK,
			data:     models.UploadResult{UnpackSummary: models.UnpackSummary{Written: []models.WrittenFile{}, Skipped: []models.SkippedEntry{}}},
			wantBody: `{"upload_id":"","written":[],"skipped":[]}`,
		},
		{
			name:     "custom status",
			status:   http.StatusAccepted,
			data:     map[string]string{"status": "accepted"},
			wantBody: `{"status":"accepted"}`,
		},
		{"nil", nil, http.StatusOK, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "upload not found", http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, len("upload not found"), n)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "upload not found", w.Body.String())
}

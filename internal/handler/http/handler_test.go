// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/mock"
	"github.com/MKhiriev/go-music-upload/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testMaxUploadSize = 1 << 20

type apiConfig struct {
	appInfo  service.AppInfoService
	server   config.Server
	security config.Security
}

type apiOption func(*apiConfig)

func withAppInfo(svc service.AppInfoService) apiOption {
	return func(c *apiConfig) { c.appInfo = svc }
}

func withHashKey(key string) apiOption {
	return func(c *apiConfig) { c.security.HashKey = key }
}

func withMaxUploadSize(n int64) apiOption {
	return func(c *apiConfig) { c.server.MaxUploadSize = n }
}

// newTestAPI builds a Handler over a mocked UploadService.
func newTestAPI(t *testing.T, opts ...apiOption) (*Handler, *mock.MockUploadService) {
	t.Helper()

	cfg := apiConfig{server: config.Server{MaxUploadSize: testMaxUploadSize}}
	for _, opt := range opts {
		opt(&cfg)
	}

	uploads := mock.NewMockUploadService(gomock.NewController(t))
	services := &service.Services{AppInfoService: cfg.appInfo, UploadService: uploads}

	return NewHandler(services, cfg.server, cfg.security, logger.Nop()), uploads
}

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// newUploadRequest builds a multipart POST /upload request with the given
// parts plus an unrelated text field.
func newUploadRequest(t *testing.T, parts ...filePart) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("comment", "ignored"))

	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+p.field+`"; filename="`+p.filename+`"`)
		if p.contentType != "" {
			header.Set("Content-Type", p.contentType)
		}
		w, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func zipPart(data []byte) filePart {
	return filePart{field: "file", filename: "album.zip", contentType: "application/zip", data: data}
}

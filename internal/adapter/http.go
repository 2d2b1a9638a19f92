// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/utils"
	"github.com/MKhiriev/go-music-upload/models"
)

const (
	uploadPath  = "/upload"
	versionPath = "/api/version"

	uploadFormField   = "file"
	uploadContentType = "application/zip"

	hashHeader    = "HashSHA256"
	traceIDHeader = "X-Trace-ID"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and applies
// cfg.RequestTimeout to every request. Uploads are signed when hashKey is
// not empty.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, hashKey string, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		hasher: utils.NewHasher(hashKey),
		logger: logger,
	}, nil
}

// normalizeBaseURL accepts "host:port" as well as full URLs and returns the
// URL without a trailing slash. A bare "0.0.0.0" host, which is only
// meaningful for listening, is replaced with 127.0.0.1.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}
	if u.Hostname() == "0.0.0.0" {
		u.Host = strings.Replace(u.Host, "0.0.0.0", "127.0.0.1", 1)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ServerAdapter].
func (h *httpServerAdapter) Upload(ctx context.Context, upload models.Upload) (models.UploadResult, error) {
	var result models.UploadResult

	req := h.client.R().
		SetContext(ctx).
		SetMultipartField(uploadFormField, upload.FileName, uploadContentType, bytes.NewReader(upload.Data)).
		SetResult(&result)

	if h.hasher.Enabled() {
		req.SetHeader(hashHeader, h.hasher.SumHex(upload.Data))
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	resp, err := req.Post(uploadPath)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "*httpServerAdapter.Upload").
			Int("status", resp.StatusCode()).
			Str("file_name", upload.FileName).
			Msg("upload rejected")
		return models.UploadResult{}, err
	}

	return result, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

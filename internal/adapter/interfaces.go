// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the upload client to talk
// to the upload server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP implementation ([NewHTTPServerAdapter]) built on
// resty. Non-2xx responses are mapped by mapHTTPError to the sentinel errors
// in errors.go, with the response body appended, so callers can use
// [errors.Is] (e.g. [ErrUnsupportedMediaType] for 415).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-music-upload/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the upload server.
type ServerAdapter interface {
	// Upload sends the archive as the "file" part of a multipart request to
	// POST /upload. When a hash key is configured the HashSHA256 header
	// carries the HMAC-SHA256 of upload.Data.
	Upload(ctx context.Context, upload models.Upload) (models.UploadResult, error)

	// Version returns the body of GET /api/version.
	Version(ctx context.Context) (string, error)
}

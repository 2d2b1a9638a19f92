// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request errors detected before the upload reaches the service layer.
var (
	// ErrNoFilePart is returned when the request is not a multipart form or
	// has no "file" part.
	ErrNoFilePart = errors.New("no file part in the request")

	// ErrUnsupportedUploadType is returned when the declared content type of
	// the "file" part is not accepted.
	ErrUnsupportedUploadType = errors.New("unsupported upload content type")

	// ErrUploadTooLarge is returned when the body exceeds the size limit.
	ErrUploadTooLarge = errors.New("upload is too large")

	// ErrInvalidHash is returned when the HashSHA256 header does not match the
	// uploaded file.
	ErrInvalidHash = errors.New("upload hash mismatch")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-music-upload/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientUploadService sends local archives to the upload server.
type ClientUploadService interface {
	// ServerVersion asks the server for its version. It doubles as a
	// connectivity check before uploading.
	ServerVersion(ctx context.Context) (string, error)

	// UploadFile reads the archive at path and uploads it.
	UploadFile(ctx context.Context, path string) (models.UploadResult, error)

	// UploadFiles uploads every archive in paths, running up to the
	// configured number of uploads at once. The outcomes are returned in the
	// order of paths. progress, when not nil, is called once per finished
	// file from the uploading goroutine and must be safe for concurrent use.
	UploadFiles(ctx context.Context, paths []string, progress func(models.FileUploadOutcome)) []models.FileUploadOutcome
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-music-upload/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UnpackService writes the audio tracks of a zip archive into the library.
type UnpackService interface {
	// Unpack processes every entry of the zip archive in data in archive
	// order. Directory markers and non-audio entries are skipped; audio
	// entries are named from their tags and written under the upload
	// directory. The first fatal failure stops the run and is returned as an
	// [*UnpackError] together with the summary of what was done before it.
	// Files written before the failure are left in place.
	Unpack(ctx context.Context, data []byte) (models.UnpackSummary, error)
}

// UploadService accepts an archive from a client: it stages it, records it
// in the upload journal and unpacks it.
type UploadService interface {
	Upload(ctx context.Context, upload models.Upload) (models.UploadResult, error)
	GetUpload(ctx context.Context, id string) (models.UploadRecord, error)
}

// StagingService maintains the staging area.
type StagingService interface {
	// CleanupExpired removes staged archives older than the retention
	// period and reports how many were removed.
	CleanupExpired(ctx context.Context) (int, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

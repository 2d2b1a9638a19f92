// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-music-upload/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LibraryStorage writes unpacked tracks into the music library.
type LibraryStorage interface {
	// Save writes data to path, creating missing parent directories.
	// With [models.CollisionOverwrite] an existing file is truncated and
	// replaced; with any other policy an existing file is left untouched and
	// [ErrFileExists] is returned.
	Save(ctx context.Context, path string, data []byte, policy models.CollisionPolicy) error
}

// StagingStorage keeps received archives on disk before they are unpacked.
type StagingStorage interface {
	// Save writes the archive of upload id and returns its path.
	Save(ctx context.Context, id string, data []byte) (string, error)
	// Remove deletes the staged archive of upload id. A missing file is not
	// an error.
	Remove(ctx context.Context, id string) error
	// RemoveExpired deletes staged archives last modified before olderThan
	// and reports how many were removed.
	RemoveExpired(ctx context.Context, olderThan time.Time) (int, error)
}

// UploadRepository is the upload journal.
type UploadRepository interface {
	// CreateUpload inserts a new journal row.
	CreateUpload(ctx context.Context, record models.UploadRecord) error
	// FinishUpload stores the final status and counts of an upload.
	FinishUpload(ctx context.Context, record models.UploadRecord) error
	// GetUpload returns the journal row of upload id.
	GetUpload(ctx context.Context, id string) (models.UploadRecord, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Unpack failure kinds. Every fatal unpack error is an [*UnpackError] whose
// Kind is one of these values.
var (
	// ErrInvalidContainer means the upload is not a zip archive.
	ErrInvalidContainer = errors.New("upload is not a valid zip archive")

	// ErrUnreadableEntry means an archive entry could not be opened or
	// decompressed (bad checksum, truncated data, unsupported method).
	ErrUnreadableEntry = errors.New("archive entry cannot be read")

	// ErrMetadataExtractionFailed means an audio entry carries a tag block
	// that cannot be parsed.
	ErrMetadataExtractionFailed = errors.New("metadata extraction failed")

	// ErrUnsafeDestination means the rendered path is empty or leaves the
	// upload directory.
	ErrUnsafeDestination = errors.New("unsafe destination path")

	// ErrDestinationCollision means the destination exists and the collision
	// policy is "error".
	ErrDestinationCollision = errors.New("destination already exists")

	// ErrDestinationUnwritable means a directory or file in the library
	// could not be created or written.
	ErrDestinationUnwritable = errors.New("destination is not writable")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrEmptyUpload      = errors.New("upload is empty")
	ErrNoUploadFileName = errors.New("upload has no file name")
	ErrNoUploadID       = errors.New("no upload id provided")

	ErrStagingUpload = errors.New("error staging upload")
)

// Client-side upload errors returned by [ClientUploadService].
var (
	ErrUploadTooLarge          = errors.New("upload rejected by server: too large")
	ErrUploadRejected          = errors.New("upload rejected by server")
	ErrUploadSignatureRejected = errors.New("upload signature rejected by server")
	ErrUploadNotFound          = errors.New("upload not found on server")
	ErrReadArchive             = errors.New("cannot read local archive")
)

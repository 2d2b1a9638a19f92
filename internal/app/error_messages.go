// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response messages shared by the HTTP handlers and
// the client, which maps them back to sentinel errors.
//
// Every Msg* constant is written as the plain-text body of an error response.
// Keeping them in one place keeps the wording identical on both sides.
package app

const (
	// MsgInternalServerError is returned for failures the client cannot fix.
	MsgInternalServerError = "internal server error"

	// MsgNoFilePart is returned when the multipart form has no "file" part or
	// the request is not a multipart form at all.
	MsgNoFilePart = "no file part in the request"

	// MsgUnsupportedUploadType is returned when the "file" part declares a
	// content type other than application/zip or application/octet-stream.
	MsgUnsupportedUploadType = "file part must be application/zip or application/octet-stream"

	// MsgUploadTooLarge is returned when the request body exceeds
	// server.max_upload_size.
	MsgUploadTooLarge = "upload is too large"

	// MsgInvalidHash is returned when the HashSHA256 header is missing or
	// does not match the uploaded bytes.
	MsgInvalidHash = "upload integrity check failed"

	// MsgEmptyUpload is returned for a "file" part with no content.
	MsgEmptyUpload = "upload is empty"

	// MsgInvalidContainer is returned when the upload is not a zip archive.
	MsgInvalidContainer = "upload is not a valid zip archive"

	MsgUnreadableEntry          = "archive entry cannot be read"
	MsgMetadataExtractionFailed = "metadata extraction failed"
	MsgUnsafeDestination        = "unsafe destination path"
	MsgDestinationCollision     = "destination already exists"
	MsgDestinationUnwritable    = "destination is not writable"

	// MsgUploadNotFound is returned for an unknown upload id.
	MsgUploadNotFound = "upload not found"

	// MsgJournalDisabled is returned by upload lookups when the server runs
	// without a journal database.
	MsgJournalDisabled = "upload journal is disabled"

	// MsgNoUploadID is returned when an upload lookup has a blank id.
	MsgNoUploadID = "no upload id provided"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UploadStatus is the lifecycle state of an upload in the journal.
type UploadStatus string

const (
	UploadAccepted  UploadStatus = "accepted"
	UploadSucceeded UploadStatus = "succeeded"
	UploadFailed    UploadStatus = "failed"
)

// Upload describes an archive received by the server, before it is unpacked.
type Upload struct {
	// ID is the server-assigned identifier, also used as the staged file name.
	ID string

	// FileName is the name the client gave the multipart file part.
	FileName string

	// Data is the archive content.
	Data []byte
}

// UploadRecord is one row of the upload journal. It stores counts only and
// never the list of written paths.
type UploadRecord struct {
	ID           string       `json:"id"`
	FileName     string       `json:"file_name"`
	Size         int64        `json:"size"`
	Status       UploadStatus `json:"status"`
	FailedStage  string       `json:"failed_stage,omitempty"`
	Error        string       `json:"error,omitempty"`
	WrittenCount int          `json:"written_count"`
	SkippedCount int          `json:"skipped_count"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// FileUploadOutcome is the client-side result of uploading one archive.
type FileUploadOutcome struct {
	// Path is the local archive path.
	Path string

	// Result is the server response, valid when Err is nil.
	Result UploadResult

	Err error
}

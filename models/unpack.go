// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SkipReason explains why an archive entry produced no output file.
type SkipReason string

const (
	// SkipDirectory marks a directory entry.
	SkipDirectory SkipReason = "directory"
	// SkipNotAudio marks an entry whose content is not a supported audio kind.
	SkipNotAudio SkipReason = "not_audio"
	// SkipExists marks an entry whose destination already existed and the
	// collision policy asked to leave it alone.
	SkipExists SkipReason = "exists"
)

// SkippedEntry is an archive entry that was intentionally not written.
type SkippedEntry struct {
	Entry  string     `json:"entry"`
	Reason SkipReason `json:"reason"`
}

// WrittenFile is an audio entry written into the library.
type WrittenFile struct {
	// Entry is the name of the source entry inside the archive.
	Entry string `json:"entry"`

	// Path is the destination relative to the upload directory.
	Path string `json:"path"`

	// Kind is the detected audio kind, e.g. "mp3" or "flac".
	Kind string `json:"kind"`
}

// UnpackSummary is the outcome of a successful unpack.
type UnpackSummary struct {
	Written []WrittenFile  `json:"written"`
	Skipped []SkippedEntry `json:"skipped"`
}

// UploadResult is returned to the uploader once an archive has been processed.
type UploadResult struct {
	UploadID string `json:"upload_id"`
	UnpackSummary
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-music-upload/models"

// fileUploadedMsg is sent once per archive as soon as its upload finishes.
type fileUploadedMsg struct {
	outcome models.FileUploadOutcome
}

// uploadsDoneMsg carries the ordered outcomes after the last archive.
type uploadsDoneMsg struct {
	outcomes []models.FileUploadOutcome
}

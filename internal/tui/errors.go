// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-music-upload/internal/service"
)

var errorTexts = []struct {
	target error
	text   string
}{
	{service.ErrInvalidContainer, "not a zip archive"},
	{service.ErrUnreadableEntry, "archive is damaged"},
	{service.ErrMetadataExtractionFailed, "a track has unreadable tags"},
	{service.ErrUnsafeDestination, "tags produce an unsafe path"},
	{service.ErrDestinationCollision, "track already exists in the library"},
	{service.ErrDestinationUnwritable, "server cannot write to the library"},
	{service.ErrUploadTooLarge, "archive is too large for the server"},
	{service.ErrUploadSignatureRejected, "server rejected the upload signature, check the hash key"},
	{service.ErrEmptyUpload, "archive is empty"},
	{service.ErrReadArchive, "cannot read the local file"},
}

// humanizeError turns an upload error into a short line for the result list.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, e := range errorTexts {
		if errors.Is(err, e.target) {
			return e.text
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unavailable"
	}

	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-music-upload/models"
)

// PathPolicy selects how metadata values are treated before rendering.
type PathPolicy string

const (
	// PolicySanitize replaces separators and other characters that are
	// invalid in file names inside metadata values, so only the pattern
	// decides the directory layout.
	PolicySanitize PathPolicy = "sanitize"

	// PolicyRaw uses metadata values as they are. A "/" inside a title
	// creates a directory.
	PolicyRaw PathPolicy = "raw"
)

// ParsePathPolicy validates s. An empty string selects [PolicySanitize].
func ParsePathPolicy(s string) (PathPolicy, error) {
	switch p := PathPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicySanitize, nil
	case PolicySanitize, PolicyRaw:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPathPolicy, s)
	}
}

var invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// Sanitize returns a copy of meta whose string values are safe to use as a
// single path segment. The track number is left untouched.
func Sanitize(meta models.TrackMetadata) models.TrackMetadata {
	meta.Artist = sanitizeValue(meta.Artist)
	meta.Title = sanitizeValue(meta.Title)
	meta.Album = sanitizeValue(meta.Album)
	return meta
}

func sanitizeValue(v *string) *string {
	if v == nil {
		return nil
	}

	s := invalidChars.ReplaceAllString(*v, "_")
	if s == "." || s == ".." {
		s = "_"
	}
	return &s
}

// Resolve joins rendered onto root. Leading separators in rendered are
// relative to root, as with [filepath.Join]. A result that is root itself or
// lies outside it (through "..") is rejected with [ErrUnsafePath].
func Resolve(root, rendered string) (string, error) {
	joined := filepath.Join(root, filepath.FromSlash(rendered))

	rel, err := filepath.Rel(root, joined)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rendered)
	}

	return joined, nil
}

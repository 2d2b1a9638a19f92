// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package naming turns track metadata into a library-relative destination
// path using a filename pattern such as
//
//	{{ARTIST}}/{{ALBUM}}/{{TRACKNUMBER}} - {{TITLE}}
//
// Substitution is literal: each token is replaced independently, absent
// values become empty strings, and nothing is escaped or re-expanded.
package naming

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-music-upload/models"
)

// Pattern tokens.
const (
	TokenArtist      = "{{ARTIST}}"
	TokenAlbum       = "{{ALBUM}}"
	TokenTitle       = "{{TITLE}}"
	TokenTrackNumber = "{{TRACKNUMBER}}"
)

// RenderPath substitutes meta into pattern and appends "."+ext when ext is
// not empty. Track numbers are written in plain decimal without padding.
//
// The result is returned verbatim: a missing album in
// "{{ARTIST}}/{{ALBUM}}/{{TRACKNUMBER}} - {{TITLE}}" yields "A//3 - T".
func RenderPath(meta models.TrackMetadata, pattern string, ext string) string {
	path := pattern
	path = strings.ReplaceAll(path, TokenArtist, deref(meta.Artist))
	path = strings.ReplaceAll(path, TokenAlbum, deref(meta.Album))
	path = strings.ReplaceAll(path, TokenTitle, deref(meta.Title))
	path = strings.ReplaceAll(path, TokenTrackNumber, trackNumber(meta.TrackNumber))

	if ext != "" {
		path += "." + ext
	}

	return path
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func trackNumber(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

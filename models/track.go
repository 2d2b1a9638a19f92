// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TrackMetadata holds the tag fields used to name a track in the library.
// Every field is independently optional: nil means the tag was not present
// (or was empty) in the source file.
type TrackMetadata struct {
	Artist      *string `json:"artist,omitempty"`
	Title       *string `json:"title,omitempty"`
	Album       *string `json:"album,omitempty"`
	TrackNumber *int    `json:"track_number,omitempty"`
}

// IsEmpty reports whether no tag field is populated.
func (m TrackMetadata) IsEmpty() bool {
	return m.Artist == nil && m.Title == nil && m.Album == nil && m.TrackNumber == nil
}

// RawEntry is a single archive member materialised in memory.
type RawEntry struct {
	// Name is the path of the entry as stored in the archive.
	Name string

	// IsFile is false for directory markers.
	IsFile bool

	// Data is the full decompressed content of the entry.
	Data []byte
}

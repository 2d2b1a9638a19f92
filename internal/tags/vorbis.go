// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tags

import (
	"encoding/binary"
	"strings"

	"github.com/MKhiriev/go-music-upload/models"
)

// vorbisCommentMetadata parses a bare Vorbis comment structure (no packet
// type prefix, no framing bit).
func vorbisCommentMetadata(b []byte) (models.TrackMetadata, error) {
	fields, err := parseVorbisComment(b)
	if err != nil {
		return models.TrackMetadata{}, err
	}
	return fromFields(fields["ARTIST"], fields["TITLE"], fields["ALBUM"], fields["TRACKNUMBER"]), nil
}

// parseVorbisComment returns the comments keyed by upper-cased field name.
// The first value of a repeated field wins.
func parseVorbisComment(b []byte) (map[string]string, error) {
	// vendor string
	_, b, err := readLengthPrefixed(b)
	if err != nil {
		return nil, err
	}

	if len(b) < 4 {
		return nil, errTruncated
	}
	count := binary.LittleEndian.Uint32(b)
	b = b[4:]

	fields := make(map[string]string)
	for range count {
		var comment []byte
		if comment, b, err = readLengthPrefixed(b); err != nil {
			return nil, err
		}

		key, value, ok := strings.Cut(string(comment), "=")
		if !ok {
			continue
		}
		key = strings.ToUpper(key)
		if _, seen := fields[key]; !seen {
			fields[key] = value
		}
	}

	return fields, nil
}

// readLengthPrefixed splits a uint32 LE length-prefixed byte string off b.
func readLengthPrefixed(b []byte) (value, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, errTruncated
	}
	n := uint64(binary.LittleEndian.Uint32(b))
	b = b[4:]
	if uint64(len(b)) < n {
		return nil, nil, errTruncated
	}
	return b[:n], b[n:], nil
}

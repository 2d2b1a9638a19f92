// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tags

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/MKhiriev/go-music-upload/models"
)

const apeFooterSize = 32

var (
	apeMagic    = []byte("MAC ")
	apeFooterID = []byte("APETAGEX")
	id3v1Magic  = []byte("TAG")
)

// readAPE reads an APEv2 tag from the end of a Monkey's Audio file. The
// footer may be followed by an ID3v1 trailer. Files without an APEv2 footer
// fall back to the ID3v1 trailer alone.
//
// Footer layout: "APETAGEX", version, tag size (items + footer), item
// count, flags, 8 reserved bytes. Every field is uint32 LE. Each item is
// value size, flags, NUL terminated key, value.
func readAPE(data []byte) (models.TrackMetadata, error) {
	end := len(data)
	if end >= id3v1Size && bytes.HasPrefix(data[end-id3v1Size:], id3v1Magic) {
		end -= id3v1Size
	}
	if end < apeFooterSize || !bytes.HasPrefix(data[end-apeFooterSize:], apeFooterID) {
		return readTags(data)
	}

	footer := data[end-apeFooterSize : end]
	size := uint64(binary.LittleEndian.Uint32(footer[12:16]))
	count := binary.LittleEndian.Uint32(footer[16:20])
	if size < apeFooterSize || size > uint64(end) {
		return models.TrackMetadata{}, errAPESize
	}

	items := data[end-int(size) : end-apeFooterSize]
	fields := make(map[string]string)
	for range count {
		if len(items) < 8 {
			return models.TrackMetadata{}, errTruncated
		}
		n := uint64(binary.LittleEndian.Uint32(items[0:4]))
		items = items[8:]

		k := bytes.IndexByte(items, 0)
		if k < 0 || uint64(len(items)-k-1) < n {
			return models.TrackMetadata{}, errTruncated
		}
		key := strings.ToUpper(string(items[:k]))
		if _, seen := fields[key]; !seen {
			fields[key] = string(items[k+1 : k+1+int(n)])
		}
		items = items[k+1+int(n):]
	}

	return fromFields(fields["ARTIST"], fields["TITLE"], fields["ALBUM"], fields["TRACK"]), nil
}

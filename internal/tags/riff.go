// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tags

import (
	"bytes"
	"encoding/binary"
	"strings"

	"github.com/MKhiriev/go-music-upload/models"
	"github.com/dhowden/tag"
)

// chunkedHeaderSize covers the container id, its size and the form type
// ("RIFF" size "WAVE", "FORM" size "AIFF").
const chunkedHeaderSize = 12

func isRIFFWave(data []byte) bool {
	return len(data) >= chunkedHeaderSize && string(data[:4]) == "RIFF" && string(data[8:12]) == "WAVE"
}

func isAIFF(data []byte) bool {
	if len(data) < chunkedHeaderSize || string(data[:4]) != "FORM" {
		return false
	}
	form := string(data[8:12])
	return form == "AIFF" || form == "AIFC"
}

// readChunked looks for an "id3 " / "ID3 " chunk holding an ID3v2 tag. WAV
// chunk sizes are little endian, AIFF ones big endian, and both pad odd
// sized chunks to an even length. Without such a chunk the file is checked
// for an ID3v1 trailer.
func readChunked(data []byte) (models.TrackMetadata, error) {
	var order binary.ByteOrder = binary.LittleEndian
	if isAIFF(data) {
		order = binary.BigEndian
	}

	for off := chunkedHeaderSize; off+8 <= len(data); {
		id := string(data[off : off+4])
		size := int(order.Uint32(data[off+4 : off+8]))
		body := data[off+8:]
		// streaming writers leave placeholder sizes behind, stop walking
		if size > len(body) {
			break
		}

		if strings.EqualFold(id, "id3 ") {
			m, err := tag.ReadID3v2Tags(bytes.NewReader(body[:size]))
			if err != nil {
				return models.TrackMetadata{}, err
			}
			return fromTagMetadata(m), nil
		}

		off += 8 + size + size&1
	}

	return readTags(data)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testutil

import (
	"bytes"
	"encoding/binary"
	"maps"
	"slices"
	"strconv"
	"testing"
)

// UntaggedWAV returns the canonical 44 byte WAV file: a PCM fmt chunk and an
// empty data chunk.
func UntaggedWAV() []byte {
	return wav(nil)
}

// WAV returns a WAV file carrying tags in an "id3 " chunk after the data.
func WAV(t *testing.T, tags Tags) []byte {
	t.Helper()
	return wav(id3v2Tag(t, tags))
}

func wav(id3 []byte) []byte {
	var body bytes.Buffer
	body.WriteString("WAVE")

	fmtChunk := make([]byte, 16)
	le := binary.LittleEndian
	le.PutUint16(fmtChunk[0:], 1)      // PCM
	le.PutUint16(fmtChunk[2:], 2)      // channels
	le.PutUint32(fmtChunk[4:], 44100)  // sample rate
	le.PutUint32(fmtChunk[8:], 176400) // byte rate
	le.PutUint16(fmtChunk[12:], 4)     // block align
	le.PutUint16(fmtChunk[14:], 16)    // bits per sample
	writeChunk(&body, le, "fmt ", fmtChunk)
	writeChunk(&body, le, "data", nil)
	if id3 != nil {
		writeChunk(&body, le, "id3 ", id3)
	}

	var out bytes.Buffer
	out.WriteString("RIFF")
	_ = binary.Write(&out, le, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// UntaggedAIFF returns an AIFF file with a COMM chunk and an empty SSND
// chunk.
func UntaggedAIFF() []byte {
	return aiff(nil)
}

// AIFF returns an AIFF file carrying tags in an "ID3 " chunk.
func AIFF(t *testing.T, tags Tags) []byte {
	t.Helper()
	return aiff(id3v2Tag(t, tags))
}

func aiff(id3 []byte) []byte {
	var body bytes.Buffer
	body.WriteString("AIFF")

	be := binary.BigEndian
	comm := make([]byte, 18)
	be.PutUint16(comm[0:], 2)  // channels
	be.PutUint16(comm[6:], 16) // bits per sample
	// 44100 as an 80 bit extended float
	copy(comm[8:], []byte{0x40, 0x0E, 0xAC, 0x44})
	writeChunk(&body, be, "COMM", comm)
	writeChunk(&body, be, "SSND", make([]byte, 8))
	if id3 != nil {
		writeChunk(&body, be, "ID3 ", id3)
	}

	var out bytes.Buffer
	out.WriteString("FORM")
	_ = binary.Write(&out, be, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeChunk(buf *bytes.Buffer, order binary.ByteOrder, id string, data []byte) {
	buf.WriteString(id)
	_ = binary.Write(buf, order, uint32(len(data)))
	buf.Write(data)
	if len(data)%2 == 1 {
		buf.WriteByte(0)
	}
}

// apeHeader is a Monkey's Audio 3.99 descriptor start followed by padding.
var apeHeader = append(
	[]byte("MAC \x96\x0F\x00\x00\x34\x00\x00\x00\x18\x00\x00\x00\x90\xE3"),
	make([]byte, 46)...,
)

// UntaggedAPE returns a Monkey's Audio file without any tag.
func UntaggedAPE() []byte {
	return bytes.Clone(apeHeader)
}

// APE returns a Monkey's Audio file with an APEv2 footer holding tags.
func APE(tags Tags) []byte {
	items := map[string]string{}
	if tags.Artist != "" {
		items["Artist"] = tags.Artist
	}
	if tags.Title != "" {
		items["Title"] = tags.Title
	}
	if tags.Album != "" {
		items["Album"] = tags.Album
	}
	if tags.Track > 0 {
		items["Track"] = strconv.Itoa(tags.Track)
	}
	return append(UntaggedAPE(), APETag(items)...)
}

// APETag encodes items as an APEv2 tag with a footer and no header. Keys
// are written in sorted order.
func APETag(items map[string]string) []byte {
	le := binary.LittleEndian

	var body bytes.Buffer
	for _, key := range slices.Sorted(maps.Keys(items)) {
		_ = binary.Write(&body, le, uint32(len(items[key])))
		_ = binary.Write(&body, le, uint32(0))
		body.WriteString(key)
		body.WriteByte(0)
		body.WriteString(items[key])
	}

	footer := make([]byte, 32)
	copy(footer, "APETAGEX")
	le.PutUint32(footer[8:], 2000)
	le.PutUint32(footer[12:], uint32(body.Len()+len(footer)))
	le.PutUint32(footer[16:], uint32(len(items)))

	return append(body.Bytes(), footer...)
}

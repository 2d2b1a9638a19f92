// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testutil builds in-memory audio files and zip archives for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"strconv"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/stretchr/testify/require"
)

// mpegFrame is an MPEG-1 layer III frame header followed by silence. It is
// long enough for readers that look for an ID3v1 trailer at the end.
var mpegFrame = append([]byte{0xFF, 0xFB, 0x90, 0x64}, make([]byte, 252)...)

// Tags are the ID3v2 text frames written by MP3. Empty fields are omitted.
type Tags struct {
	Artist string
	Title  string
	Album  string
	Track  int
}

// MP3 returns an MP3 file with an ID3v2.4 tag holding tags.
func MP3(t *testing.T, tags Tags) []byte {
	t.Helper()
	return append(id3v2Tag(t, tags), mpegFrame...)
}

// id3v2Tag encodes tags as an ID3v2.4 tag.
func id3v2Tag(t *testing.T, tags Tags) []byte {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	if tags.Artist != "" {
		tag.SetArtist(tags.Artist)
	}
	if tags.Title != "" {
		tag.SetTitle(tags.Title)
	}
	if tags.Album != "" {
		tag.SetAlbum(tags.Album)
	}
	if tags.Track > 0 {
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, strconv.Itoa(tags.Track))
	}

	var buf bytes.Buffer
	_, err := tag.WriteTo(&buf)
	require.NoError(t, err)

	return buf.Bytes()
}

// UntaggedMP3 returns a bare MPEG frame stream without any tag block.
func UntaggedMP3() []byte {
	return bytes.Clone(mpegFrame)
}

// FLAC returns a FLAC stream made of an empty STREAMINFO block and a final
// VORBIS_COMMENT block holding comments in KEY=value form.
func FLAC(comments ...string) []byte {
	var buf bytes.Buffer
	buf.WriteString("fLaC")
	buf.Write([]byte{0x00, 0x00, 0x00, 0x22})
	buf.Write(make([]byte, 0x22))
	buf.Write(flacCommentBlock(comments))

	return buf.Bytes()
}

// flacCommentBlock is a last-in-chain VORBIS_COMMENT metadata block.
func flacCommentBlock(comments []string) []byte {
	vc := vorbisComment(comments)
	n := len(vc)
	return append([]byte{0x84, byte(n >> 16), byte(n >> 8), byte(n)}, vc...)
}

// vorbisComment encodes a bare Vorbis comment structure.
func vorbisComment(comments []string) []byte {
	var vc bytes.Buffer
	vendor := "go-music-upload"
	_ = binary.Write(&vc, binary.LittleEndian, uint32(len(vendor)))
	vc.WriteString(vendor)
	_ = binary.Write(&vc, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		_ = binary.Write(&vc, binary.LittleEndian, uint32(len(c)))
		vc.WriteString(c)
	}
	return vc.Bytes()
}

// CorruptFLAC returns bytes that carry the FLAC signature but whose first
// metadata block claims more data than the stream holds.
func CorruptFLAC() []byte {
	return []byte("fLaC\x00\x00\x00\x22\x00\x00\x00\x00")
}

// Entry is one member of an archive built by Zip. A Name ending in "/" is
// written as a directory marker and Data is ignored.
type Entry struct {
	Name string
	Data []byte
}

// Zip returns a zip archive holding entries in order.
func Zip(t *testing.T, entries ...Entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		require.NoError(t, err)
		if len(e.Name) > 0 && e.Name[len(e.Name)-1] == '/' {
			continue
		}
		_, err = w.Write(e.Data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

// ZipWithCorruptEntry returns an archive whose entry named name is stored
// uncompressed and has one content byte flipped, so reading it fails the
// CRC-32 check. data must not be empty and should be unique in the archive.
func ZipWithCorruptEntry(t *testing.T, name string, data []byte, others ...Entry) []byte {
	t.Helper()
	require.NotEmpty(t, data)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range others {
		w, err := zw.Create(e.Name)
		require.NoError(t, err)
		_, err = w.Write(e.Data)
		require.NoError(t, err)
	}
	w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Store})
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out := buf.Bytes()
	idx := bytes.LastIndex(out, data)
	require.GreaterOrEqual(t, idx, 0)
	out[idx] ^= 0xFF

	return out
}

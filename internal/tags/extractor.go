// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tags reads the naming-relevant tag fields (artist, title, album,
// track number) out of an in-memory audio file.
//
// ID3 (v1 and v2), native FLAC, Ogg Vorbis and Ogg Opus are parsed by
// github.com/dhowden/tag. Ogg Speex, Ogg FLAC and APEv2 tags are parsed in
// this package, and ID3v2 chunks embedded in WAV and AIFF files are located
// here and handed to the same ID3v2 reader.
package tags

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/dhowden/tag"
)

//go:generate mockgen -source=extractor.go -destination=../mock/extractor_mock.go -package=mock

// id3v1Size is the length of the ID3v1 trailer tag.ReadFrom seeks back to
// for input without a recognised header.
const id3v1Size = 128

// Extractor reads [models.TrackMetadata] from a fully materialised audio file.
//
// A file without any recognised tag block yields an all-absent record and a
// nil error. A tag block that is present but cannot be parsed yields an error
// wrapping [ErrCorruptTags].
type Extractor interface {
	Extract(ctx context.Context, data []byte) (models.TrackMetadata, error)
}

type tagExtractor struct{}

// NewExtractor returns an [Extractor] backed by github.com/dhowden/tag.
func NewExtractor() Extractor {
	return tagExtractor{}
}

func (tagExtractor) Extract(ctx context.Context, data []byte) (models.TrackMetadata, error) {
	var (
		meta models.TrackMetadata
		err  error
	)

	switch {
	case bytes.HasPrefix(data, oggCapture):
		meta, err = readOgg(data)
	case isRIFFWave(data), isAIFF(data):
		meta, err = readChunked(data)
	case bytes.HasPrefix(data, apeMagic):
		meta, err = readAPE(data)
	default:
		meta, err = readTags(data)
	}

	if errors.Is(err, tag.ErrNoTagsFound) {
		logger.FromContext(ctx).Debug().Str("func", "tagExtractor.Extract").Msg("no tags found")
		return models.TrackMetadata{}, nil
	}
	if err != nil {
		return models.TrackMetadata{}, fmt.Errorf("%w: %w", ErrCorruptTags, err)
	}

	return meta, nil
}

// readTags hands data to tag.ReadFrom. Short input without one of the
// headers ReadFrom dispatches on cannot hold an ID3v1 trailer and is
// reported as untagged.
func readTags(data []byte) (models.TrackMetadata, error) {
	if !hasReaderPrefix(data) && len(data) < id3v1Size {
		return models.TrackMetadata{}, tag.ErrNoTagsFound
	}

	m, err := tag.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return models.TrackMetadata{}, err
	}

	return fromTagMetadata(m), nil
}

// hasReaderPrefix reports whether tag.ReadFrom parses data by its header
// rather than by an ID3v1 trailer.
func hasReaderPrefix(data []byte) bool {
	for _, p := range []string{"fLaC", "OggS", "ID3", "DSD "} {
		if bytes.HasPrefix(data, []byte(p)) {
			return true
		}
	}
	return len(data) >= 8 && string(data[4:8]) == "ftyp"
}

func fromTagMetadata(m tag.Metadata) models.TrackMetadata {
	var meta models.TrackMetadata

	meta.Artist = nonEmpty(m.Artist())
	meta.Title = nonEmpty(m.Title())
	meta.Album = nonEmpty(m.Album())

	// 0 is what the parser reports when the field is missing or unparsable
	if track, _ := m.Track(); track > 0 {
		meta.TrackNumber = &track
	}

	return meta
}

// fromFields builds a record from raw text fields. track may carry a total
// ("3/12").
func fromFields(artist, title, album, track string) models.TrackMetadata {
	meta := models.TrackMetadata{
		Artist: nonEmpty(artist),
		Title:  nonEmpty(title),
		Album:  nonEmpty(album),
	}
	if n := parseTrack(track); n > 0 {
		meta.TrackNumber = &n
	}
	return meta
}

func parseTrack(s string) int {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func nonEmpty(s string) *string {
	s = strings.TrimRight(s, "\x00")
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

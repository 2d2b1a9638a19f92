// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package media classifies raw bytes into the closed set of content kinds the
// upload pipeline understands: the zip container, the supported audio
// formats, and everything else.
//
// Classification looks at content only. File names and declared content
// types are never consulted.
package media

// Kind is the detected content kind of a byte sequence.
type Kind int

const (
	// KindUnknown is anything that is neither a zip nor a supported audio format.
	KindUnknown Kind = iota
	// KindZip is the zip container accepted as an upload payload.
	KindZip
	KindMP3
	KindFLAC
	// KindOgg covers Vorbis, Opus and Speex streams in an Ogg container.
	KindOgg
	KindWAV
	KindAIFF
	KindAPE
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindZip:     "zip",
	KindMP3:     "mp3",
	KindFLAC:    "flac",
	KindOgg:     "ogg",
	KindWAV:     "wav",
	KindAIFF:    "aiff",
	KindAPE:     "ape",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// IsAudio reports whether k is one of the supported audio kinds.
func (k Kind) IsAudio() bool {
	return k >= KindMP3 && k <= KindAPE
}

// IsContainer reports whether k is the accepted upload container.
func (k Kind) IsContainer() bool {
	return k == KindZip
}

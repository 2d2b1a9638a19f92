// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tags

import "errors"

// ErrCorruptTags is returned when a tag block is present but malformed.
var ErrCorruptTags = errors.New("corrupt tag structure")

var (
	errTruncated        = errors.New("tag data is truncated")
	errOggCapture       = errors.New("ogg page does not start with OggS")
	errOggChecksum      = errors.New("ogg page checksum mismatch")
	errOggCommentHeader = errors.New("ogg comment header missing")
	errOggFLACHeader    = errors.New("malformed ogg flac mapping header")
	errAPESize          = errors.New("ape tag size out of range")
)

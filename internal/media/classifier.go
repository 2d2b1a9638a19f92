// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package media

import "github.com/gabriel-vasile/mimetype"

//go:generate mockgen -source=classifier.go -destination=../mock/classifier_mock.go -package=mock

// Classifier detects the [Kind] of a byte sequence.
// Implementations must be pure: the same bytes always give the same Kind.
type Classifier interface {
	Classify(data []byte) Kind
}

// mimeKinds is the single place where detected MIME types are mapped to
// kinds. Aliases (audio/x-wav, audio/mp3, audio/x-aiff, ...) are resolved by
// mimetype itself.
var mimeKinds = []struct {
	mime string
	kind Kind
}{
	{"application/zip", KindZip},
	{"audio/mpeg", KindMP3},
	{"audio/flac", KindFLAC},
	{"audio/ogg", KindOgg},
	{"audio/wav", KindWAV},
	{"audio/aiff", KindAIFF},
	{"audio/ape", KindAPE},
}

type mimeClassifier struct{}

// NewClassifier returns a [Classifier] backed by magic-number detection.
func NewClassifier() Classifier {
	return mimeClassifier{}
}

func (mimeClassifier) Classify(data []byte) Kind {
	return kindOf(mimetype.Detect(data))
}

// kindOf matches the detected type itself, never its parents: jar, docx and
// epub are zip files underneath but are reported as unknown.
func kindOf(m *mimetype.MIME) Kind {
	for _, mk := range mimeKinds {
		if m.Is(mk.mime) {
			return mk.kind
		}
	}
	return KindUnknown
}

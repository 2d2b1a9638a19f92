// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultHTTPAddress     = "0.0.0.0:5551"
	DefaultMaxUploadSize   = 100 << 20
	DefaultFilenamePattern = "{{ARTIST}}/{{ALBUM}}/{{TRACKNUMBER}} - {{TITLE}}"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 5 * time.Minute,
			MaxUploadSize:  DefaultMaxUploadSize,
		},
		Output: Output{
			UploadDir:       "music",
			FilenamePattern: DefaultFilenamePattern,
			OnCollision:     "overwrite",
			PathPolicy:      "sanitize",
		},
		Staging: Staging{
			Dir:             filepath.Join(os.TempDir(), "music_upload", "files"),
			Retention:       24 * time.Hour,
			CleanupInterval: time.Hour,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:5551",
			RequestTimeout: 5 * time.Minute,
			Parallel:       4,
		},
	}
}

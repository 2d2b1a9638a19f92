// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/models"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// libraryStorage is the local filesystem [LibraryStorage].
type libraryStorage struct {
	logger *logger.Logger
}

// NewLibraryStorage returns a [LibraryStorage] writing to the local filesystem.
func NewLibraryStorage(logger *logger.Logger) LibraryStorage {
	return &libraryStorage{logger: logger}
}

func (s *libraryStorage) Save(ctx context.Context, path string, data []byte, policy models.CollisionPolicy) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		log.Err(err).Str("func", "*libraryStorage.Save").Str("path", path).Msg("error creating parent directories")
		return fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if policy != models.CollisionOverwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, filePerm)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}
	if err != nil {
		log.Err(err).Str("func", "*libraryStorage.Save").Str("path", path).Msg("error opening destination")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		log.Err(err).Str("func", "*libraryStorage.Save").Str("path", path).Msg("error writing destination")
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-music-upload/internal/logger"
)

const stagedExt = ".zip"

// stagingStorage keeps received archives as <dir>/<upload id>.zip.
type stagingStorage struct {
	dir    string
	logger *logger.Logger
}

// NewStagingStorage returns a [StagingStorage] rooted at dir. The directory
// is created on first use.
func NewStagingStorage(dir string, logger *logger.Logger) StagingStorage {
	return &stagingStorage{
		dir:    dir,
		logger: logger,
	}
}

func (s *stagingStorage) path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id)+stagedExt)
}

func (s *stagingStorage) Save(ctx context.Context, id string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		log.Err(err).Str("func", "*stagingStorage.Save").Msg("error creating staging directory")
		return "", fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	path := s.path(id)
	if err := os.WriteFile(path, data, 0600); err != nil {
		log.Err(err).Str("func", "*stagingStorage.Save").Msg("error writing staged archive")
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	log.Debug().Str("path", path).Int("size", len(data)).Msg("archive staged")
	return path, nil
}

func (s *stagingStorage) Remove(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*stagingStorage.Remove").Msg("error removing staged archive")
		return fmt.Errorf("%w: %w", ErrRemovingFile, err)
	}
	return nil
}

func (s *stagingStorage) RemoveExpired(ctx context.Context, olderThan time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading staging directory: %w", err)
	}

	var (
		removed int
		errs    []error
	)
	for _, entry := range entries {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), stagedExt) {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil || !info.ModTime().Before(olderThan) {
			continue
		}

		if rmErr := os.Remove(filepath.Join(s.dir, entry.Name())); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%w: %w", ErrRemovingFile, rmErr))
			continue
		}
		removed++
	}

	return removed, errors.Join(errs...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/media"
	"github.com/MKhiriev/go-music-upload/internal/naming"
	"github.com/MKhiriev/go-music-upload/internal/store"
	"github.com/MKhiriev/go-music-upload/internal/tags"
	"github.com/MKhiriev/go-music-upload/models"
)

type unpackService struct {
	root       string
	pattern    string
	collision  models.CollisionPolicy
	pathPolicy naming.PathPolicy

	classifier media.Classifier
	extractor  tags.Extractor
	library    store.LibraryStorage

	logger *logger.Logger
}

// NewUnpackService builds an [UnpackService] writing into cfg.UploadDir with
// cfg.FilenamePattern. The collision and path policies are validated here.
func NewUnpackService(
	cfg config.Output,
	classifier media.Classifier,
	extractor tags.Extractor,
	library store.LibraryStorage,
	logger *logger.Logger,
) (UnpackService, error) {
	collision, err := models.ParseCollisionPolicy(cfg.OnCollision)
	if err != nil {
		return nil, err
	}

	pathPolicy, err := naming.ParsePathPolicy(cfg.PathPolicy)
	if err != nil {
		return nil, err
	}

	return &unpackService{
		root:       filepath.Clean(cfg.UploadDir),
		pattern:    cfg.FilenamePattern,
		collision:  collision,
		pathPolicy: pathPolicy,
		classifier: classifier,
		extractor:  extractor,
		library:    library,
		logger:     logger,
	}, nil
}

func (s *unpackService) Unpack(ctx context.Context, data []byte) (models.UnpackSummary, error) {
	log := logger.FromContextOr(ctx, s.logger)

	summary := emptySummary()

	if err := checkContainer(s.classifier, data); err != nil {
		log.Warn().Err(err).Str("func", "*unpackService.Unpack").Msg("upload rejected by zip gate")
		return summary, err
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		log.Err(err).Str("func", "*unpackService.Unpack").Msg("error opening zip archive")
		return summary, newUnpackError(StageOpen, "", ErrInvalidContainer, err)
	}

	for _, file := range archive.File {
		if err = ctx.Err(); err != nil {
			return summary, err
		}

		if file.FileInfo().IsDir() {
			summary.Skipped = append(summary.Skipped, models.SkippedEntry{Entry: file.Name, Reason: models.SkipDirectory})
			log.Debug().Str("entry", file.Name).Str("reason", string(models.SkipDirectory)).Msg("skipped")
			continue
		}

		entry, readErr := readEntry(file)
		if readErr != nil {
			log.Err(readErr).Str("func", "*unpackService.Unpack").Str("entry", file.Name).Msg("error reading entry")
			return summary, newUnpackError(StageRead, file.Name, ErrUnreadableEntry, readErr)
		}

		if err = s.unpackEntry(ctx, entry, &summary); err != nil {
			return summary, err
		}
	}

	log.Info().
		Int("written", len(summary.Written)).
		Int("skipped", len(summary.Skipped)).
		Msg("archive unpacked")

	return summary, nil
}

func (s *unpackService) unpackEntry(ctx context.Context, entry models.RawEntry, summary *models.UnpackSummary) error {
	log := logger.FromContextOr(ctx, s.logger)

	kind := s.classifier.Classify(entry.Data)
	if !kind.IsAudio() {
		summary.Skipped = append(summary.Skipped, models.SkippedEntry{Entry: entry.Name, Reason: models.SkipNotAudio})
		log.Debug().Str("entry", entry.Name).Str("reason", string(models.SkipNotAudio)).Stringer("kind", kind).Msg("skipped")
		return nil
	}

	meta, err := s.extractor.Extract(ctx, entry.Data)
	if err != nil {
		log.Err(err).Str("func", "*unpackService.unpackEntry").Str("entry", entry.Name).Msg("error extracting metadata")
		return newUnpackError(StageExtract, entry.Name, ErrMetadataExtractionFailed, err)
	}

	if s.pathPolicy == naming.PolicySanitize {
		meta = naming.Sanitize(meta)
	}

	rendered := naming.RenderPath(meta, s.pattern, extension(entry.Name))
	dest, err := naming.Resolve(s.root, rendered)
	if err != nil {
		log.Err(err).Str("func", "*unpackService.unpackEntry").Str("entry", entry.Name).Str("rendered", rendered).Msg("unsafe destination")
		return newUnpackError(StageRender, entry.Name, ErrUnsafeDestination, err)
	}

	err = s.library.Save(ctx, dest, entry.Data, s.collision)
	switch {
	case errors.Is(err, store.ErrFileExists) && s.collision == models.CollisionSkip:
		summary.Skipped = append(summary.Skipped, models.SkippedEntry{Entry: entry.Name, Reason: models.SkipExists})
		log.Debug().Str("entry", entry.Name).Str("reason", string(models.SkipExists)).Str("path", dest).Msg("skipped")
		return nil
	case errors.Is(err, store.ErrFileExists):
		return newUnpackError(StageWrite, entry.Name, ErrDestinationCollision, err)
	case errors.Is(err, store.ErrCreatingDirectory):
		return newUnpackError(StageMkdir, entry.Name, ErrDestinationUnwritable, err)
	case err != nil:
		return newUnpackError(StageWrite, entry.Name, ErrDestinationUnwritable, err)
	}

	rel, err := filepath.Rel(s.root, dest)
	if err != nil {
		rel = dest
	}
	summary.Written = append(summary.Written, models.WrittenFile{
		Entry: entry.Name,
		Path:  filepath.ToSlash(rel),
		Kind:  kind.String(),
	})
	log.Info().Str("entry", entry.Name).Str("path", dest).Stringer("kind", kind).Msg("written")

	return nil
}

func emptySummary() models.UnpackSummary {
	return models.UnpackSummary{
		Written: []models.WrittenFile{},
		Skipped: []models.SkippedEntry{},
	}
}

// checkContainer is the zip gate. It fails with an [*UnpackError] at
// [StageGate] unless data is detected as a zip archive.
func checkContainer(classifier media.Classifier, data []byte) error {
	if kind := classifier.Classify(data); !kind.IsContainer() {
		return newUnpackError(StageGate, "", ErrInvalidContainer, fmt.Errorf("detected content kind %s", kind))
	}
	return nil
}

// readEntry decompresses a whole archive member. Checksum and size
// mismatches surface from the final read.
func readEntry(file *zip.File) (models.RawEntry, error) {
	rc, err := file.Open()
	if err != nil {
		return models.RawEntry{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return models.RawEntry{}, err
	}

	return models.RawEntry{Name: file.Name, IsFile: true, Data: data}, nil
}

// extension returns the extension of the last segment of an entry name
// without the leading dot, or "" when there is none.
func extension(name string) string {
	return strings.TrimPrefix(path.Ext(path.Base(name)), ".")
}

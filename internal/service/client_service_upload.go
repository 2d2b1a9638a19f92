// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-music-upload/internal/adapter"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/utils"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type clientUploadService struct {
	adapter  adapter.ServerAdapter
	parallel int

	logger *logger.Logger
}

// NewClientUploadService returns a [ClientUploadService] that runs at most
// parallel uploads at once. Values below one are treated as one.
func NewClientUploadService(serverAdapter adapter.ServerAdapter, parallel int, logger *logger.Logger) ClientUploadService {
	if parallel < 1 {
		parallel = 1
	}

	return &clientUploadService{
		adapter:  serverAdapter,
		parallel: parallel,
		logger:   logger,
	}
}

func (s *clientUploadService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

func (s *clientUploadService) UploadFile(ctx context.Context, path string) (models.UploadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("%w %s: %w", ErrReadArchive, path, err)
	}
	if len(data) == 0 {
		return models.UploadResult{}, ErrEmptyUpload
	}

	if _, ok := utils.GetTraceIDFromContext(ctx); !ok {
		ctx = utils.WithTraceID(ctx, uuid.NewString())
	}

	traceID, _ := utils.GetTraceIDFromContext(ctx)
	log := s.logger.With().Str("trace_id", traceID).Str("path", path).Logger()
	log.Debug().Int("size", len(data)).Msg("uploading archive")

	result, err := s.adapter.Upload(ctx, models.Upload{
		FileName: filepath.Base(path),
		Data:     data,
	})
	if err != nil {
		log.Warn().Err(err).Msg("upload failed")
		return models.UploadResult{}, mapAdapterError(err)
	}

	log.Info().
		Str("upload_id", result.UploadID).
		Int("written", len(result.Written)).
		Int("skipped", len(result.Skipped)).
		Msg("archive uploaded")
	return result, nil
}

func (s *clientUploadService) UploadFiles(ctx context.Context, paths []string, progress func(models.FileUploadOutcome)) []models.FileUploadOutcome {
	outcomes := make([]models.FileUploadOutcome, len(paths))

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)

	for i, path := range paths {
		g.Go(func() error {
			outcome := models.FileUploadOutcome{Path: path}
			if err := gCtx.Err(); err != nil {
				outcome.Err = err
			} else {
				outcome.Result, outcome.Err = s.UploadFile(gCtx, path)
			}

			outcomes[i] = outcome
			if progress != nil {
				mu.Lock()
				progress(outcome)
				mu.Unlock()
			}
			// one failed archive never stops the others
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/media"
	"github.com/MKhiriev/go-music-upload/internal/store"
	"github.com/MKhiriev/go-music-upload/internal/utils"
	"github.com/MKhiriev/go-music-upload/models"
)

type uploadService struct {
	classifier media.Classifier
	unpacker   UnpackService
	staging    store.StagingStorage
	journal    store.UploadRepository

	ids utils.IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewUploadService builds the [UploadService]. Upload ids come from ids.
// classifier runs the zip gate before anything is written to staging.
func NewUploadService(
	classifier media.Classifier,
	unpacker UnpackService,
	staging store.StagingStorage,
	journal store.UploadRepository,
	ids utils.IDGenerator,
	logger *logger.Logger,
) UploadService {
	return &uploadService{
		classifier: classifier,
		unpacker:   unpacker,
		staging:    staging,
		journal:    journal,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

// Upload rejects payloads that are not zip archives without touching the
// disk. Otherwise it stages upload.Data as <id>.zip, journals it as accepted, unpacks
// it and journals the outcome. Journal failures are logged and never fail
// the upload.
func (s *uploadService) Upload(ctx context.Context, upload models.Upload) (models.UploadResult, error) {
	if upload.ID == "" {
		upload.ID = s.ids.Generate()
	}

	log := logger.FromContextOr(ctx, s.logger).With().Str("upload_id", upload.ID).Str("file_name", upload.FileName).Logger()
	ctx = log.WithContext(ctx)

	if err := checkContainer(s.classifier, upload.Data); err != nil {
		log.Warn().Err(err).Str("func", "*uploadService.Upload").Msg("upload rejected by zip gate")
		return models.UploadResult{UploadID: upload.ID, UnpackSummary: emptySummary()}, err
	}

	if _, err := s.staging.Save(ctx, upload.ID, upload.Data); err != nil {
		log.Err(err).Str("func", "*uploadService.Upload").Msg("error staging upload")
		return models.UploadResult{}, fmt.Errorf("%w: %w", ErrStagingUpload, err)
	}

	now := s.now()
	record := models.UploadRecord{
		ID:        upload.ID,
		FileName:  upload.FileName,
		Size:      int64(len(upload.Data)),
		Status:    models.UploadAccepted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.journal.CreateUpload(ctx, record); err != nil {
		log.Err(err).Str("func", "*uploadService.Upload").Msg("error recording upload")
	}

	summary, unpackErr := s.unpacker.Unpack(ctx, upload.Data)

	record.WrittenCount = len(summary.Written)
	record.SkippedCount = len(summary.Skipped)
	record.UpdatedAt = s.now()
	record.Status = models.UploadSucceeded
	if unpackErr != nil {
		record.Status = models.UploadFailed
		record.Error = unpackErr.Error()
		var ue *UnpackError
		if errors.As(unpackErr, &ue) {
			record.FailedStage = string(ue.Stage)
		}
	}

	if err := s.journal.FinishUpload(ctx, record); err != nil {
		log.Err(err).Str("func", "*uploadService.Upload").Msg("error finishing upload record")
	}

	if unpackErr != nil {
		return models.UploadResult{UploadID: upload.ID, UnpackSummary: summary}, unpackErr
	}

	log.Info().Int("written", record.WrittenCount).Int("skipped", record.SkippedCount).Msg("upload processed")
	return models.UploadResult{UploadID: upload.ID, UnpackSummary: summary}, nil
}

func (s *uploadService) GetUpload(ctx context.Context, id string) (models.UploadRecord, error) {
	return s.journal.GetUpload(ctx, id)
}

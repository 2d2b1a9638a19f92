// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/jackc/pgerrcode"
)

// uploadRepository is the database-backed [UploadRepository] over the
// "uploads" table. It works with both PostgreSQL and SQLite.
type uploadRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUploadRepository constructs an [UploadRepository] backed by db.
func NewUploadRepository(db *DB, logger *logger.Logger) UploadRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating upload repository")
	return &uploadRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUpload inserts record. A duplicate id yields [ErrUploadAlreadyRecorded].
func (r *uploadRepository) CreateUpload(ctx context.Context, record models.UploadRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUploadQuery(r.db.builder(), record)
	if err != nil {
		log.Err(err).Str("func", "*uploadRepository.CreateUpload").Msg("error building query")
		return err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*uploadRepository.CreateUpload").Msg("error inserting upload")
		if isUniqueViolation(err) {
			return ErrUploadAlreadyRecorded
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FinishUpload updates status, failure details and counts of record.ID.
func (r *uploadRepository) FinishUpload(ctx context.Context, record models.UploadRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildFinishUploadQuery(r.db.builder(), record)
	if err != nil {
		log.Err(err).Str("func", "*uploadRepository.FinishUpload").Msg("error building query")
		return err
	}

	var result sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*uploadRepository.FinishUpload").Msg("error updating upload")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Error().Str("func", "*uploadRepository.FinishUpload").Str("upload_id", record.ID).Msg("upload row is missing")
		return ErrUploadNotFound
	}

	return nil
}

// GetUpload returns the journal row of id, or [ErrUploadNotFound].
func (r *uploadRepository) GetUpload(ctx context.Context, id string) (models.UploadRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUploadQuery(r.db.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "*uploadRepository.GetUpload").Msg("error building query")
		return models.UploadRecord{}, err
	}

	var (
		record models.UploadRecord
		status string
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&record.ID, &record.FileName, &record.Size, &status, &record.FailedStage, &record.Error,
			&record.WrittenCount, &record.SkippedCount, &record.CreatedAt, &record.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.UploadRecord{}, ErrUploadNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*uploadRepository.GetUpload").Msg("error selecting upload")
		return models.UploadRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	record.Status = models.UploadStatus(status)
	return record, nil
}

func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation || sqliteUniqueViolation(err)
}

// disabledUploadRepository is used when no journal database is configured.
// Writes are accepted and dropped; lookups report [ErrJournalDisabled].
type disabledUploadRepository struct{}

// NewDisabledUploadRepository returns an [UploadRepository] that keeps nothing.
func NewDisabledUploadRepository() UploadRepository {
	return disabledUploadRepository{}
}

func (disabledUploadRepository) CreateUpload(context.Context, models.UploadRecord) error { return nil }

func (disabledUploadRepository) FinishUpload(context.Context, models.UploadRecord) error { return nil }

func (disabledUploadRepository) GetUpload(context.Context, string) (models.UploadRecord, error) {
	return models.UploadRecord{}, ErrJournalDisabled
}

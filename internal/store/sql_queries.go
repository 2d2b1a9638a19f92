// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-music-upload/models"
	sq "github.com/Masterminds/squirrel"
)

const uploadsTable = "uploads"

var uploadColumns = []string{
	"id",
	"file_name",
	"size",
	"status",
	"failed_stage",
	"error_message",
	"written_count",
	"skipped_count",
	"created_at",
	"updated_at",
}

func buildInsertUploadQuery(b sq.StatementBuilderType, r models.UploadRecord) (string, []any, error) {
	query, args, err := b.Insert(uploadsTable).
		Columns(uploadColumns...).
		Values(r.ID, r.FileName, r.Size, string(r.Status), r.FailedStage, r.Error,
			r.WrittenCount, r.SkippedCount, r.CreatedAt.UTC(), r.UpdatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFinishUploadQuery(b sq.StatementBuilderType, r models.UploadRecord) (string, []any, error) {
	query, args, err := b.Update(uploadsTable).
		Set("status", string(r.Status)).
		Set("failed_stage", r.FailedStage).
		Set("error_message", r.Error).
		Set("written_count", r.WrittenCount).
		Set("skipped_count", r.SkippedCount).
		Set("updated_at", r.UpdatedAt.UTC()).
		Where(sq.Eq{"id": r.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUploadQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(uploadColumns...).
		From(uploadsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

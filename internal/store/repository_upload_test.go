// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newPostgresDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestCreateUpload(t *testing.T) {
	tests := []struct {
		name    string
		execErr []error
		wantErr error
	}{
		{name: "success"},
		{name: "duplicate id", execErr: []error{&pgconn.PgError{Code: pgerrcode.UniqueViolation}}, wantErr: ErrUploadAlreadyRecorded},
		{name: "driver error", execErr: []error{errors.New("conn reset")}, wantErr: ErrExecutingStatement},
		{
			name:    "retryable then success",
			execErr: []error{&pgconn.PgError{Code: pgerrcode.SerializationFailure}, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewUploadRepository(newPostgresDBFromSQL(db), logger.Nop())

			attempts := tt.execErr
			if len(attempts) == 0 {
				attempts = []error{nil}
			}
			for _, e := range attempts {
				exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO uploads"))
				if e != nil {
					exp.WillReturnError(e)
				} else {
					exp.WillReturnResult(sqlmock.NewResult(0, 1))
				}
			}

			err := repo.CreateUpload(testContext(), testRecord())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFinishUpload(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "success", result: sqlmock.NewResult(0, 1)},
		{name: "missing row", result: sqlmock.NewResult(0, 0), wantErr: ErrUploadNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewUploadRepository(newPostgresDBFromSQL(db), logger.Nop())

			r := testRecord()
			r.Status = models.UploadSucceeded

			exp := mock.ExpectExec(regexp.QuoteMeta("UPDATE uploads SET")).
				WithArgs("succeeded", "", "", r.WrittenCount, r.SkippedCount, sqlmock.AnyArg(), r.ID)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.FinishUpload(testContext(), r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUpload(t *testing.T) {
	r := testRecord()

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUploadRepository(newPostgresDBFromSQL(db), logger.Nop())

		rows := sqlmock.NewRows(uploadColumns).AddRow(
			r.ID, r.FileName, r.Size, "succeeded", "", "", r.WrittenCount, r.SkippedCount, r.CreatedAt, r.UpdatedAt,
		)
		mock.ExpectQuery(regexp.QuoteMeta("FROM uploads WHERE id = $1")).WithArgs(r.ID).WillReturnRows(rows)

		got, err := repo.GetUpload(testContext(), r.ID)
		require.NoError(t, err)

		want := r
		want.Status = models.UploadSucceeded
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUploadRepository(newPostgresDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM uploads")).WillReturnRows(sqlmock.NewRows(uploadColumns))

		_, err := repo.GetUpload(testContext(), "missing")
		assert.ErrorIs(t, err, ErrUploadNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUploadRepository(newPostgresDBFromSQL(db), logger.Nop())

		mock.ExpectQuery(regexp.QuoteMeta("FROM uploads")).WillReturnError(errors.New("boom"))

		_, err := repo.GetUpload(testContext(), "id")
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestDisabledUploadRepository(t *testing.T) {
	repo := NewDisabledUploadRepository()
	ctx := testContext()

	assert.NoError(t, repo.CreateUpload(ctx, testRecord()))
	assert.NoError(t, repo.FinishUpload(ctx, testRecord()))

	_, err := repo.GetUpload(ctx, "id")
	assert.ErrorIs(t, err, ErrJournalDisabled)
}

func TestUploadRepository_SQLite(t *testing.T) {
	ctx := testContext()
	dsn := filepath.Join(t.TempDir(), "data", "journal.db")

	db, err := NewConnect(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	repo := NewUploadRepository(db, logger.Nop())
	r := testRecord()

	require.NoError(t, repo.CreateUpload(ctx, r))
	assert.ErrorIs(t, repo.CreateUpload(ctx, r), ErrUploadAlreadyRecorded)

	r.Status = models.UploadFailed
	r.FailedStage = "read"
	r.Error = "zip: checksum error"
	r.UpdatedAt = r.CreatedAt.Add(time.Second)
	require.NoError(t, repo.FinishUpload(ctx, r))

	got, err := repo.GetUpload(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UploadFailed, got.Status)
	assert.Equal(t, "read", got.FailedStage)
	assert.Equal(t, "zip: checksum error", got.Error)
	assert.True(t, r.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, r.UpdatedAt.Equal(got.UpdatedAt))

	_, err = repo.GetUpload(ctx, "unknown")
	assert.ErrorIs(t, err, ErrUploadNotFound)

	r.ID = "unknown"
	assert.ErrorIs(t, repo.FinishUpload(ctx, r), ErrUploadNotFound)
}

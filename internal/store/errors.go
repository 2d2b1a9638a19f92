// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storages and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrFileExists is returned by [LibraryStorage.Save] when the destination
	// already exists and the collision policy forbids replacing it.
	ErrFileExists = errors.New("destination file already exists")

	// ErrCreatingDirectory is returned when the parent directories of a
	// destination cannot be created.
	ErrCreatingDirectory = errors.New("error creating directory")

	// ErrWritingFile is returned when a file cannot be created or written.
	ErrWritingFile = errors.New("error writing file")

	// ErrRemovingFile is returned when a staged archive cannot be deleted.
	ErrRemovingFile = errors.New("error removing file")

	// ErrUploadAlreadyRecorded is returned when the journal already holds a
	// row with the same upload id.
	ErrUploadAlreadyRecorded = errors.New("upload is already recorded")

	// ErrUploadNotFound is returned when no journal row matches the id.
	ErrUploadNotFound = errors.New("upload was not found")

	// ErrJournalDisabled is returned by the journal lookups when no database
	// is configured.
	ErrJournalDisabled = errors.New("upload journal is disabled")

	// ErrUnsupportedDialect is returned by migrations and connections for an
	// unknown database kind.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a journal row fails.
	ErrScanningRow = errors.New("failed to scan upload row")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
)

// Storages bundles every persistence backend used by the services.
type Storages struct {
	LibraryStorage   LibraryStorage
	StagingStorage   StagingStorage
	UploadRepository UploadRepository

	db *DB
}

// NewStorages builds the storages described by cfg. When a journal DSN is
// configured the database is connected and migrated; otherwise a disabled
// journal is used.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	storages := &Storages{
		LibraryStorage:   NewLibraryStorage(log),
		StagingStorage:   NewStagingStorage(cfg.Staging.Dir, log),
		UploadRepository: NewDisabledUploadRepository(),
	}

	if cfg.Storage.DB.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("upload journal is disabled")
		return storages, nil
	}

	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating upload journal: %w", err)
	}

	storages.db = db
	storages.UploadRepository = NewUploadRepository(db, log)
	return storages, nil
}

// Close releases the journal database, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

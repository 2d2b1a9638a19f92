// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/media"
	"github.com/MKhiriev/go-music-upload/internal/store"
	"github.com/MKhiriev/go-music-upload/internal/tags"
	"github.com/MKhiriev/go-music-upload/internal/utils"
)

// Services groups the server-side services used by the handlers and workers.
type Services struct {
	AppInfoService AppInfoService
	UnpackService  UnpackService
	UploadService  UploadService
	StagingService StagingService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	classifier := media.NewClassifier()

	unpacker, err := NewUnpackService(cfg.Output, classifier, tags.NewExtractor(), storages.LibraryStorage, logger)
	if err != nil {
		return nil, err
	}

	upload := NewUploadValidationService().Wrap(
		NewUploadService(classifier, unpacker, storages.StagingStorage, storages.UploadRepository, utils.NewUUIDGenerator(), logger),
	)

	return &Services{
		AppInfoService: appInfo,
		UnpackService:  unpacker,
		UploadService:  upload,
		StagingService: NewStagingService(cfg.Staging, storages.StagingStorage, logger),
	}, nil
}

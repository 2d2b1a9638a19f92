// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/store"
)

type stagingService struct {
	staging   store.StagingStorage
	retention time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewStagingService(cfg config.Staging, staging store.StagingStorage, logger *logger.Logger) StagingService {
	return &stagingService{
		staging:   staging,
		retention: cfg.Retention,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *stagingService) CleanupExpired(ctx context.Context) (int, error) {
	removed, err := s.staging.RemoveExpired(ctx, s.now().Add(-s.retention))
	if err != nil {
		s.logger.Err(err).Str("func", "*stagingService.CleanupExpired").Int("removed", removed).Msg("staging cleanup finished with errors")
		return removed, err
	}

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("expired staged archives removed")
	}
	return removed, nil
}

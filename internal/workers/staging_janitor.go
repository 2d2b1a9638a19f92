// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/service"
)

// StagingJanitor periodically deletes staged archives older than the
// configured retention.
type StagingJanitor struct {
	staging  service.StagingService
	interval time.Duration

	logger *logger.Logger
}

// NewStagingJanitor returns a janitor sweeping every interval. A
// non-positive interval disables it.
func NewStagingJanitor(staging service.StagingService, interval time.Duration, logger *logger.Logger) *StagingJanitor {
	return &StagingJanitor{
		staging:  staging,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick. Cleanup failures are
// logged and never stop the janitor.
func (j *StagingJanitor) Run(ctx context.Context) error {
	if j.interval <= 0 {
		j.logger.Info().Str("func", "*StagingJanitor.Run").Msg("staging janitor is disabled")
		return nil
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.sweep(ctx)

		select {
		case <-ctx.Done():
			j.logger.Info().Str("func", "*StagingJanitor.Run").Msg("staging janitor stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (j *StagingJanitor) sweep(ctx context.Context) {
	removed, err := j.staging.CleanupExpired(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*StagingJanitor.sweep").Int("removed", removed).Msg("error cleaning staging directory")
		return
	}
	j.logger.Debug().Int("removed", removed).Msg("staging sweep finished")
}

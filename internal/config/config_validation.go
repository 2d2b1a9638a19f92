// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-music-upload/internal/naming"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is usable by the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Output.UploadDir == "" || cfg.Output.FilenamePattern == "" {
		return fmt.Errorf("%w: upload dir and filename pattern are required", ErrInvalidOutputConfigs)
	}
	if _, err := models.ParseCollisionPolicy(cfg.Output.OnCollision); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}
	if _, err := naming.ParsePathPolicy(cfg.Output.PathPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOutputConfigs, err)
	}

	if cfg.Staging.Dir == "" {
		return fmt.Errorf("%w: empty staging dir", ErrInvalidStagingConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.Parallel < 1 {
		return ErrInvalidAdapterConfigs
	}

	if len(cfg.Files) == 0 {
		return ErrNoFilesToUpload
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a merged configuration is unusable.
var (
	// ErrInvalidAppConfigs indicates an empty version or unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing address or a non-positive
	// upload size limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidOutputConfigs indicates a missing upload directory or
	// pattern, or an unknown collision or path policy.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidStagingConfigs indicates a missing staging directory.
	ErrInvalidStagingConfigs = errors.New("invalid staging configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or parallelism).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrNoFilesToUpload is returned by GetClientConfig when no archive was given.
	ErrNoFilesToUpload = errors.New("no files to upload")
)

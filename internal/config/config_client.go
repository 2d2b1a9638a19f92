// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server endpoint, with or without scheme.
	HTTPAddress string
	// RequestTimeout is the timeout for a single upload request.
	RequestTimeout time.Duration
	// Parallel is the number of concurrent uploads.
	Parallel int
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	// HashKey signs uploaded archives when non-empty.
	HashKey string
	// Files are the archives to upload.
	Files []string
	// LogLevel is a zerolog level name for the client log file.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration from the
// environment, the client flags, the config file and the defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseClientFlags, os.Args[1:]).
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Parallel:       cfg.Adapter.Parallel,
		},
		HashKey:  cfg.Security.HashKey,
		Files:    cfg.Adapter.Files,
		LogLevel: cfg.App.LogLevel,
	}
}

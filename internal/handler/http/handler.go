// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-music-upload/internal/config"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/service"
	"github.com/MKhiriev/go-music-upload/internal/utils"
)

// Handler serves the upload API on top of [service.Services].
type Handler struct {
	services *service.Services

	hasher        *utils.Hasher
	maxUploadSize int64

	logger *logger.Logger
}

// NewHandler builds a Handler. Uploads are limited to server.MaxUploadSize
// bytes and verified against the HashSHA256 header when security.HashKey is
// set.
func NewHandler(services *service.Services, server config.Server, security config.Security, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		hasher:        utils.NewHasher(security.HashKey),
		maxUploadSize: server.MaxUploadSize,
		logger:        logger,
	}
}

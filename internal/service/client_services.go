// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-music-upload/internal/adapter"
	"github.com/MKhiriev/go-music-upload/internal/logger"
)

type ClientServices struct {
	UploadService ClientUploadService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, parallel int, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UploadService: NewClientUploadService(serverAdapter, parallel, logger),
	}
}

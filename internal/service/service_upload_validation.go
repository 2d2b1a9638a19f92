// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-music-upload/models"
)

// UploadServiceWrapper defines middleware composition for [UploadService].
// Implementations decorate an existing UploadService with extra behaviour.
type UploadServiceWrapper interface {
	Wrap(UploadService) UploadService
}

// UploadValidationService rejects obviously malformed requests before they
// reach the wrapped [UploadService].
type UploadValidationService struct {
	inner UploadService
}

func NewUploadValidationService() UploadServiceWrapper {
	return &UploadValidationService{}
}

func (v *UploadValidationService) Upload(ctx context.Context, upload models.Upload) (models.UploadResult, error) {
	if len(upload.Data) == 0 {
		return models.UploadResult{}, ErrEmptyUpload
	}
	if strings.TrimSpace(upload.FileName) == "" {
		return models.UploadResult{}, ErrNoUploadFileName
	}

	return v.inner.Upload(ctx, upload)
}

func (v *UploadValidationService) GetUpload(ctx context.Context, id string) (models.UploadRecord, error) {
	if strings.TrimSpace(id) == "" {
		return models.UploadRecord{}, ErrNoUploadID
	}

	return v.inner.GetUpload(ctx, id)
}

func (v *UploadValidationService) Wrap(inner UploadService) UploadService {
	v.inner = inner
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/utils"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/go-chi/chi/v5"
)

const (
	uploadFormField = "file"
	uploadIDHeader  = "X-Upload-ID"

	// multipartMemory is how much of a multipart body is kept in memory
	// before the rest spills into temporary files.
	multipartMemory = 32 << 20
)

var acceptedUploadTypes = map[string]bool{
	"application/zip":          true,
	"application/octet-stream": true,
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	upload, err := readUpload(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.upload")
		return
	}

	log.Debug().Str("file_name", upload.FileName).Int("size", len(upload.Data)).Msg("upload received")

	result, err := h.services.UploadService.Upload(ctx, upload)
	if result.UploadID != "" {
		w.Header().Set(uploadIDHeader, result.UploadID)
	}
	if err != nil {
		h.writeError(w, r, err, "*Handler.upload")
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error writing response")
	}
}

func (h *Handler) getUpload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	record, err := h.services.UploadService.GetUpload(r.Context(), chi.URLParam(r, "uploadID"))
	if err != nil {
		h.writeError(w, r, err, "*Handler.getUpload")
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getUpload").Msg("error writing response")
	}
}

// readUpload extracts the "file" part of a multipart request. Every other
// part is ignored.
func readUpload(r *http.Request) (models.Upload, error) {
	file, header, err := openUploadFile(r)
	if err != nil {
		return models.Upload{}, err
	}
	defer file.Close()

	mediaType, _, err := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if err != nil || !acceptedUploadTypes[mediaType] {
		return models.Upload{}, fmt.Errorf("%w: %q", ErrUnsupportedUploadType, header.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Upload{}, classifyBodyError(err)
	}

	return models.Upload{
		FileName: header.Filename,
		Data:     data,
	}, nil
}

func openUploadFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, classifyBodyError(err)
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		return nil, nil, classifyBodyError(err)
	}
	return file, header, nil
}

func classifyBodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: limit %d bytes", ErrUploadTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrNoFilePart, err)
}

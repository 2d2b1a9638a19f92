// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-music-upload/internal/app"
	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/internal/service"
	"github.com/MKhiriev/go-music-upload/internal/store"
)

type errorResponse struct {
	status int
	msg    string
}

// errorResponses is checked in order. An [*service.UnpackError] matches both
// its kind and its cause, so unpack kinds come before anything a cause could
// wrap.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrNoFilePart, errorResponse{http.StatusBadRequest, app.MsgNoFilePart}},
	{ErrUnsupportedUploadType, errorResponse{http.StatusBadRequest, app.MsgUnsupportedUploadType}},
	{ErrUploadTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgUploadTooLarge}},
	{ErrInvalidHash, errorResponse{http.StatusBadRequest, app.MsgInvalidHash}},

	{service.ErrEmptyUpload, errorResponse{http.StatusBadRequest, app.MsgEmptyUpload}},
	{service.ErrNoUploadFileName, errorResponse{http.StatusBadRequest, app.MsgNoFilePart}},
	{service.ErrNoUploadID, errorResponse{http.StatusBadRequest, app.MsgNoUploadID}},

	{service.ErrInvalidContainer, errorResponse{http.StatusUnsupportedMediaType, app.MsgInvalidContainer}},
	{service.ErrUnreadableEntry, errorResponse{http.StatusUnprocessableEntity, app.MsgUnreadableEntry}},
	{service.ErrMetadataExtractionFailed, errorResponse{http.StatusUnprocessableEntity, app.MsgMetadataExtractionFailed}},
	{service.ErrUnsafeDestination, errorResponse{http.StatusUnprocessableEntity, app.MsgUnsafeDestination}},
	{service.ErrDestinationCollision, errorResponse{http.StatusConflict, app.MsgDestinationCollision}},
	{service.ErrDestinationUnwritable, errorResponse{http.StatusInternalServerError, app.MsgDestinationUnwritable}},

	{store.ErrUploadNotFound, errorResponse{http.StatusNotFound, app.MsgUploadNotFound}},
	{store.ErrJournalDisabled, errorResponse{http.StatusNotImplemented, app.MsgJournalDisabled}},
}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the matching status and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", resp.status).Msg(resp.msg)
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", resp.status).Msg(resp.msg)
	}

	http.Error(w, resp.msg, resp.status)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-music-upload/internal/adapter"
	"github.com/MKhiriev/go-music-upload/internal/app"
)

// unpackMessages maps the plain-text bodies of unpack failures back to the
// matching kind.
var unpackMessages = map[string]error{
	app.MsgInvalidContainer:         ErrInvalidContainer,
	app.MsgUnreadableEntry:          ErrUnreadableEntry,
	app.MsgMetadataExtractionFailed: ErrMetadataExtractionFailed,
	app.MsgUnsafeDestination:        ErrUnsafeDestination,
	app.MsgDestinationCollision:     ErrDestinationCollision,
	app.MsgDestinationUnwritable:    ErrDestinationUnwritable,
}

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)
	if kind, ok := unpackMessages[msg]; ok {
		return kind
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidHash:
			return ErrUploadSignatureRejected
		case app.MsgEmptyUpload:
			return ErrEmptyUpload
		case app.MsgNoUploadID:
			return ErrNoUploadID
		}
		return fmt.Errorf("%w: %s", ErrUploadRejected, msg)

	case errors.Is(err, adapter.ErrRequestTooLarge):
		return ErrUploadTooLarge

	case errors.Is(err, adapter.ErrUnsupportedMediaType):
		return ErrInvalidContainer

	case errors.Is(err, adapter.ErrConflict):
		return ErrDestinationCollision

	case errors.Is(err, adapter.ErrUnprocessableEntity):
		return fmt.Errorf("%w: %s", ErrUploadRejected, msg)

	case errors.Is(err, adapter.ErrNotFound):
		return ErrUploadNotFound
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

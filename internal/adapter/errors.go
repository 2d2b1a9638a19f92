// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors, one per HTTP status the server is known to return.
var (
	ErrBadRequest           = errors.New("bad request")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrRequestTooLarge      = errors.New("request entity too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrUnprocessableEntity  = errors.New("unprocessable entity")
	ErrInternalServerError  = errors.New("internal server error")
	ErrNotImplemented       = errors.New("not implemented")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-music-upload/internal/utils"
)

const indexGreeting = "Hello world!"

func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	utils.WriteText(w, indexGreeting, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-music-upload/internal/logger"
)

// hashHeader carries the hex HMAC-SHA256 of the uploaded file bytes.
const hashHeader = "HashSHA256"

// withUploadHash rejects uploads whose HashSHA256 header does not match the
// "file" part. It is a no-op without a configured hash key. Requests whose
// form cannot be read are passed through so the handler reports the real
// problem.
func (h *Handler) withUploadHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hasher.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.withUploadHash").Msg("checking hash begins")

		file, _, err := openUploadFile(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		hashFromRequest := r.Header.Get(hashHeader)
		if !h.hasher.Verify(data, hashFromRequest) {
			log.Error().Str("func", "*Handler.withUploadHash").
				Str("hash from request", hashFromRequest).
				Msg("hashes are not equal")
			h.writeError(w, r, fmt.Errorf("%w: header %q", ErrInvalidHash, hashFromRequest), "*Handler.withUploadHash")
			return
		}

		log.Debug().Str("func", "*Handler.withUploadHash").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}

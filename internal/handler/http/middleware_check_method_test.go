// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_UnservedMethodsReturn404(t *testing.T) {
	h, _ := newTestAPI(t)
	router := h.Init()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/upload"},
		{http.MethodPut, "/upload"},
		{http.MethodDelete, "/upload"},
		{http.MethodPatch, "/upload"},
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/version"},
		{http.MethodPost, "/"},
		{http.MethodDelete, "/api/uploads/0190c3a4"},
		{http.MethodPut, "/api/uploads/0190c3a4"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
		})
	}
}

func TestCheckHTTPMethod_UnknownPathStaysNotFound(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckHTTPMethod_ServableRequestIsForwarded(t *testing.T) {
	h, _ := newTestAPI(t)
	router := h.Init()

	// called directly, as chi would if it ever routed a servable request here
	rec := httptest.NewRecorder()
	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello world!", rec.Body.String())
}

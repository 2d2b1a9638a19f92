// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the upload server.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, body size limits and the optional upload integrity check
// run here before requests are delegated to the service layer.
package http

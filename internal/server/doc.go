// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP listener and the background workers.
//
// It handles startup, signal handling, and graceful shutdown of both.
package server

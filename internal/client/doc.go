// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the upload client runtime.
//
// It checks the server, hands the archives to the terminal UI and turns the
// per-file outcomes into the process result.
package client

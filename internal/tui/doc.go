// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the client upload run in the terminal: a spinner and
// a progress bar while archives are in flight, then one line per archive
// with the number of written and skipped tracks or the reason it failed.
package tui

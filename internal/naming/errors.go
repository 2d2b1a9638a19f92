// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import "errors"

var (
	// ErrUnsafePath is returned by Resolve for destinations outside the root.
	ErrUnsafePath = errors.New("destination escapes the upload directory")

	ErrUnknownPathPolicy = errors.New("unknown path policy")
)

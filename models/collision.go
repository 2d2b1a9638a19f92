// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// CollisionPolicy decides what happens when a destination file already exists.
type CollisionPolicy string

const (
	// CollisionOverwrite truncates and replaces the existing file.
	CollisionOverwrite CollisionPolicy = "overwrite"
	// CollisionSkip keeps the existing file and reports the entry as skipped.
	CollisionSkip CollisionPolicy = "skip"
	// CollisionError fails the unpack.
	CollisionError CollisionPolicy = "error"
)

// ErrUnknownCollisionPolicy is returned by ParseCollisionPolicy.
var ErrUnknownCollisionPolicy = errors.New("unknown collision policy")

// ParseCollisionPolicy validates s. An empty string selects [CollisionOverwrite].
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch p := CollisionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return CollisionOverwrite, nil
	case CollisionOverwrite, CollisionSkip, CollisionError:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollisionPolicy, s)
	}
}

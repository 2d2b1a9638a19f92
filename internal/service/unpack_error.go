// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "fmt"

// Stage names the step of the unpack pipeline at which a failure happened.
type Stage string

const (
	StageGate    Stage = "gate"
	StageOpen    Stage = "open"
	StageRead    Stage = "read"
	StageExtract Stage = "extract"
	StageRender  Stage = "render"
	StageMkdir   Stage = "mkdir"
	StageWrite   Stage = "write"
)

// UnpackError is the error returned by [UnpackService.Unpack] for a fatal
// failure. Both Kind and Err take part in [errors.Is] and [errors.As].
type UnpackError struct {
	Stage Stage
	// Entry is the archive entry being processed, empty for archive-level
	// failures.
	Entry string
	// Kind is one of the sentinel errors of this package.
	Kind error
	// Err is the underlying cause, may be nil.
	Err error
}

func (e *UnpackError) Error() string {
	msg := e.Kind.Error()
	if e.Entry != "" {
		msg = fmt.Sprintf("%s: entry %q", msg, e.Entry)
	}
	msg = fmt.Sprintf("%s (stage %s)", msg, e.Stage)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *UnpackError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newUnpackError(stage Stage, entry string, kind, err error) *UnpackError {
	return &UnpackError{Stage: stage, Entry: entry, Kind: kind, Err: err}
}

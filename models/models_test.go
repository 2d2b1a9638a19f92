// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackMetadata_IsEmpty(t *testing.T) {
	artist := "A"
	track := 0

	assert.True(t, TrackMetadata{}.IsEmpty())
	assert.False(t, TrackMetadata{Artist: &artist}.IsEmpty())
	assert.False(t, TrackMetadata{TrackNumber: &track}.IsEmpty())
}

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}

func TestParseCollisionPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    CollisionPolicy
		wantErr bool
	}{
		{in: "", want: CollisionOverwrite},
		{in: "overwrite", want: CollisionOverwrite},
		{in: "Skip", want: CollisionSkip},
		{in: " error ", want: CollisionError},
		{in: "rename", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCollisionPolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownCollisionPolicy)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

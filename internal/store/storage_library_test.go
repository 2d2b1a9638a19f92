// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-music-upload/internal/logger"
	"github.com/MKhiriev/go-music-upload/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryStorage_Save(t *testing.T) {
	ctx := testContext()
	s := NewLibraryStorage(logger.Nop())

	t.Run("creates parent directories", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "Artist", "Album", "3 - Title.mp3")

		require.NoError(t, s.Save(ctx, dest, []byte("audio"), models.CollisionOverwrite))

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "audio", string(got))
	})

	t.Run("overwrite truncates", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "a.mp3")
		require.NoError(t, os.WriteFile(dest, []byte("a much longer old content"), 0644))

		require.NoError(t, s.Save(ctx, dest, []byte("new"), models.CollisionOverwrite))

		got, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})

	for _, policy := range []models.CollisionPolicy{models.CollisionSkip, models.CollisionError} {
		t.Run("keeps existing with "+string(policy), func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "a.mp3")
			require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))

			err := s.Save(ctx, dest, []byte("new"), policy)
			assert.ErrorIs(t, err, ErrFileExists)

			got, readErr := os.ReadFile(dest)
			require.NoError(t, readErr)
			assert.Equal(t, "old", string(got))
		})

		t.Run("creates missing with "+string(policy), func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "a.mp3")
			require.NoError(t, s.Save(ctx, dest, []byte("new"), policy))
		})
	}

	t.Run("parent is a file", func(t *testing.T) {
		root := t.TempDir()
		blocker := filepath.Join(root, "Artist")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))

		err := s.Save(ctx, filepath.Join(blocker, "Album", "t.mp3"), []byte("x"), models.CollisionOverwrite)
		assert.ErrorIs(t, err, ErrCreatingDirectory)
	})

	t.Run("destination is a directory", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "t.mp3")
		require.NoError(t, os.Mkdir(dest, 0755))

		err := s.Save(ctx, dest, []byte("x"), models.CollisionOverwrite)
		assert.ErrorIs(t, err, ErrWritingFile)
	})
}

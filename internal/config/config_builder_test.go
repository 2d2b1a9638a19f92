// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func staticFlags(cfg *StructuredConfig, err error) flagParser {
	return func([]string) (*StructuredConfig, error) { return cfg, err }
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overridden by a later one, while empty fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Output: Output{UploadDir: "/from/env"}},
		&StructuredConfig{Output: Output{UploadDir: "/from/flags", FilenamePattern: "{{TITLE}}"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Output.UploadDir)
	assert.Equal(t, "{{TITLE}}", cfg.Output.FilenamePattern)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":       "env-version",
		"OUTPUT_UPLOAD_DIR": "/srv/music",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/srv/music", b.configs[0].Output.UploadDir)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_MAX_UPLOAD_SIZE": "lots"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(parseServerFlags, []string{"-o", "/flag/music"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/flag/music", b.configs[0].Output.UploadDir)
}

func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(staticFlags(nil, assert.AnError), nil)

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"output": map[string]any{"upload_dir": "/json/music"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json/music", b.configs[1].Output.UploadDir)
}

func TestWithFile_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: first},
		&StructuredConfig{ConfigFilePath: second},
	)
	b.withFile()

	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

func TestWithFile_FallsBackToLegacyFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, legacyConfigFile), []byte("port = 6000\n\n[output]\nupload_dir = \"legacy\"\nfilename_pattern = \"{{TITLE}}\"\n"), 0o644))

	b := newConfigBuilder()
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "legacy", b.configs[0].Output.UploadDir)
	assert.Equal(t, "0.0.0.0:6000", b.configs[0].Server.HTTPAddress)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/definitely/missing.json"})
	b.withFile()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_Precedence(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("OUTPUT_UPLOAD_DIR", "/env/music")
	path := writeTempFile(t, "music.toml", `
[output]
upload_dir = "/file/music"
filename_pattern = "{{ARTIST}} - {{TITLE}}"
on_collision = "skip"

[staging]
retention = "2h"
`)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseServerFlags, []string{"-c", path, "-p", "{{TITLE}}"}).
		withFile().
		withDefaults().
		build()
	require.NoError(t, err)
	require.NoError(t, cfg.validate())

	assert.Equal(t, "/env/music", cfg.Output.UploadDir, "env beats file")
	assert.Equal(t, "{{TITLE}}", cfg.Output.FilenamePattern, "flags beat file")
	assert.Equal(t, "skip", cfg.Output.OnCollision, "file beats defaults")
	assert.Equal(t, 2*time.Hour, cfg.Staging.Retention)
	assert.Equal(t, "sanitize", cfg.Output.PathPolicy, "defaults fill the rest")
	assert.Equal(t, int64(DefaultMaxUploadSize), cfg.Server.MaxUploadSize)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestBuilder_AccumulatesErrors(t *testing.T) {
	errFlags := errors.New("flags broke")

	_, err := newConfigBuilder().
		withFlags(staticFlags(nil, errFlags), nil).
		withFlags(staticFlags(nil, assert.AnError), nil).
		build()

	assert.ErrorIs(t, err, errFlags)
	assert.ErrorIs(t, err, assert.AnError)
}

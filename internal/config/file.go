// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk layout shared by the TOML and JSON formats.
//
// The top-level port and interface keys and the [output] table keep
// upload_music.toml files of the form
//
//	port = 5551
//	interface = "0.0.0.0"
//
//	[output]
//	upload_dir = "/srv/music"
//	filename_pattern = "{{ARTIST}}/{{ALBUM}}/{{TRACKNUMBER}} - {{TITLE}}"
//
// working without changes.
type fileConfig struct {
	Port      int    `json:"port" toml:"port"`
	Interface string `json:"interface" toml:"interface"`

	App struct {
		Version  string `json:"version" toml:"version"`
		LogLevel string `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Server struct {
		Address        string   `json:"address" toml:"address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size" toml:"max_upload_size"`
	} `json:"server" toml:"server"`

	Output struct {
		UploadDir       string `json:"upload_dir" toml:"upload_dir"`
		FilenamePattern string `json:"filename_pattern" toml:"filename_pattern"`
		OnCollision     string `json:"on_collision" toml:"on_collision"`
		PathPolicy      string `json:"path_policy" toml:"path_policy"`
	} `json:"output" toml:"output"`

	Staging struct {
		Dir             string   `json:"dir" toml:"dir"`
		Retention       Duration `json:"retention" toml:"retention"`
		CleanupInterval Duration `json:"cleanup_interval" toml:"cleanup_interval"`
	} `json:"staging" toml:"staging"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Security struct {
		HashKey string `json:"hash_key" toml:"hash_key"`
	} `json:"security" toml:"security"`

	Adapter struct {
		Address        string   `json:"address" toml:"address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		Parallel       int      `json:"parallel" toml:"parallel"`
	} `json:"adapter" toml:"adapter"`
}

// parseFile reads a config file. Files ending in .json are decoded as JSON,
// everything else as TOML.
func parseFile(path string) (*StructuredConfig, error) {
	var fc fileConfig

	if strings.EqualFold(filepath.Ext(path), ".json") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error reading a json file: %w", err)
		}
		defer f.Close()

		if err := json.NewDecoder(f).Decode(&fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	} else {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	address := fc.Server.Address
	if address == "" && (fc.Interface != "" || fc.Port != 0) {
		host := fc.Interface
		if host == "" {
			host = "0.0.0.0"
		}
		port := fc.Port
		if port == 0 {
			_, p, _ := net.SplitHostPort(DefaultHTTPAddress)
			port, _ = strconv.Atoi(p)
		}
		address = net.JoinHostPort(host, strconv.Itoa(port))
	}

	return &StructuredConfig{
		App: App{
			Version:  fc.App.Version,
			LogLevel: fc.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:    address,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			MaxUploadSize:  fc.Server.MaxUploadSize,
		},
		Output: Output{
			UploadDir:       fc.Output.UploadDir,
			FilenamePattern: fc.Output.FilenamePattern,
			OnCollision:     fc.Output.OnCollision,
			PathPolicy:      fc.Output.PathPolicy,
		},
		Staging: Staging{
			Dir:             fc.Staging.Dir,
			Retention:       time.Duration(fc.Staging.Retention),
			CleanupInterval: time.Duration(fc.Staging.CleanupInterval),
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Security: Security{
			HashKey: fc.Security.HashKey,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.Address,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			Parallel:       fc.Adapter.Parallel,
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and TOML. JSON numbers are taken as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// flagParser parses command-line arguments (without the program name) into a
// partial config.
type flagParser func(args []string) (*StructuredConfig, error)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseServerFlags parses the server flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-o upload directory (library root)
//	-p filename pattern
//	-collision on-collision policy: overwrite, skip, error
//	-path-policy metadata path policy: sanitize, raw
//	-s staging directory
//	-retention how long staged archives are kept (e.g. "24h")
//	-cleanup-interval staging cleanup period (e.g. "1h")
//	-max-upload-size maximum request body in bytes
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-d upload journal DSN
//	-k upload integrity hash key
//	-log-level log level
//	-c/-config config file path (.toml or .json)
func parseServerFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var serverAddress NetAddress

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Output.UploadDir, "o", "", "Upload directory")
	fs.StringVar(&cfg.Output.FilenamePattern, "p", "", "Filename pattern")
	fs.StringVar(&cfg.Output.OnCollision, "collision", "", "On collision: overwrite, skip, error")
	fs.StringVar(&cfg.Output.PathPolicy, "path-policy", "", "Metadata path policy: sanitize, raw")
	fs.StringVar(&cfg.Staging.Dir, "s", "", "Staging directory")
	fs.DurationVar(&cfg.Staging.Retention, "retention", 0, "Staged archive retention (e.g., 24h)")
	fs.DurationVar(&cfg.Staging.CleanupInterval, "cleanup-interval", 0, "Staging cleanup interval (e.g., 1h)")
	fs.Int64Var(&cfg.Server.MaxUploadSize, "max-upload-size", 0, "Maximum upload size in bytes")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Upload journal DSN")
	fs.StringVar(&cfg.Security.HashKey, "k", "", "Upload integrity hash key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg, nil
}

// parseClientFlags parses the client flags. Positional arguments are the
// archives to upload.
//
// Flags:
//
//	-a server address, with or without scheme
//	-k upload integrity hash key
//	-t request timeout (e.g. "2m")
//	-n number of parallel uploads
//	-c/-config config file path (.toml or .json)
func parseClientFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.StringVar(&cfg.Security.HashKey, "k", "", "Upload integrity hash key")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "t", 0, "Request timeout (e.g., 2m)")
	fs.IntVar(&cfg.Adapter.Parallel, "n", 0, "Parallel uploads")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Adapter.Files = fs.Args()
	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

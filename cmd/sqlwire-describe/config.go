// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for sqlwire-describe.
// Every field has a flag equivalent; flags win over the file, and the
// DATABASE_URL environment variable sits between the two.
type Config struct {
	// DatabaseURL is the database to describe against.
	DatabaseURL string `yaml:"database_url"`

	// OfflineDir is the offline store directory.
	// Defaults to .sqlwire.
	OfflineDir string `yaml:"offline_dir"`

	// Timeout bounds a live describe, in time.ParseDuration syntax
	// (for example "30s"). Defaults to 10s.
	Timeout string `yaml:"timeout"`
}

// settings is the fully resolved configuration a run operates on.
type settings struct {
	databaseURL string
	offlineDir  string
	timeout     time.Duration
}

// LoadConfig loads a configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Timeout != "" {
		if _, err := time.ParseDuration(config.Timeout); err != nil {
			return nil, fmt.Errorf("invalid timeout in config file: %w", err)
		}
	}

	return &config, nil
}

// resolveSettings layers the configuration sources: built-in defaults,
// then the config file (from --config or SQLWIRE_CONFIG), then the
// DATABASE_URL environment variable, then explicit flags.
func resolveSettings(configPath string, flags flagValues) (settings, error) {
	resolved := settings{
		offlineDir: ".sqlwire",
		timeout:    10 * time.Second,
	}

	if configPath == "" {
		configPath = os.Getenv("SQLWIRE_CONFIG")
	}
	if configPath != "" {
		config, err := LoadConfig(configPath)
		if err != nil {
			return settings{}, err
		}
		if config.DatabaseURL != "" {
			resolved.databaseURL = config.DatabaseURL
		}
		if config.OfflineDir != "" {
			resolved.offlineDir = config.OfflineDir
		}
		if config.Timeout != "" {
			// Validated by LoadConfig.
			resolved.timeout, _ = time.ParseDuration(config.Timeout)
		}
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		resolved.databaseURL = url
	}

	if flags.databaseURLSet {
		resolved.databaseURL = flags.databaseURL
	}
	if flags.offlineDirSet {
		resolved.offlineDir = flags.offlineDir
	}
	if flags.timeoutSet {
		resolved.timeout = flags.timeout
	}

	return resolved, nil
}

// flagValues carries the parsed flags plus whether each was set
// explicitly, so unset flags do not shadow the file or environment.
type flagValues struct {
	databaseURL    string
	databaseURLSet bool
	offlineDir     string
	offlineDirSet  bool
	timeout        time.Duration
	timeoutSet     bool
}

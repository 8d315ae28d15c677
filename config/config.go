// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides file-backed defaults for the rigchat shell.
//
// Runtime-mutable settings (endpoint address, auto-rename toggle) live in
// the settings store; the TOML file supplies the defaults the shell seeds
// them from, plus the knobs that never change at runtime (storage backend,
// request timeout).
//
// Location: ~/.rigchat/config.toml, overridable per call.
package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/rigchat/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete rigchat configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Server  ServerConfig  `toml:"server"`
	Chat    ChatConfig    `toml:"chat"`
}

// StorageConfig selects and locates the key-value substrate.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `toml:"backend"`
	// Dir is the data directory (file backend: the key tree; sqlite
	// backend: holds rigchat.db). Empty means ~/.rigchat/data.
	Dir string `toml:"dir"`
}

// ServerConfig describes the Ollama endpoint.
type ServerConfig struct {
	// Host is the default endpoint address as "host:port"; it seeds the
	// "ip" setting when that is unset.
	Host string `toml:"host"`
	// TimeoutSecs is the per-request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs"`
	// RequestsPerSecond throttles outgoing requests (0 = unlimited).
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// ChatConfig holds conversation defaults.
type ChatConfig struct {
	// DefaultModel is preselected when the shell starts.
	DefaultModel string `toml:"default_model"`
	// AutoRename seeds the "autoRename" setting when that is unset.
	AutoRename bool `toml:"auto_rename"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{Backend: "file"},
		Server:  ServerConfig{Host: "127.0.0.1:11434", TimeoutSecs: 120},
		Chat:    ChatConfig{AutoRename: true},
	}
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// DefaultPath returns ~/.rigchat/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rigchat", "config.toml"), nil
}

// Load reads the TOML config at path, layered over defaults. A missing file
// yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to path atomically.
func Save(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return util.AtomicWriteFile(path, buf.Bytes(), 0644)
}

// Validate checks field values against their allowed ranges.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("invalid storage backend %q", c.Storage.Backend)
	}
	if c.Server.TimeoutSecs < 0 {
		return fmt.Errorf("timeout_secs must not be negative")
	}
	if c.Server.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	if c.Server.Host != "" {
		if _, err := url.Parse("http://" + c.Server.Host); err != nil {
			return fmt.Errorf("invalid server host %q: %w", c.Server.Host, err)
		}
	}
	return nil
}

// DataDir resolves the storage directory, defaulting to ~/.rigchat/data.
func (c Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".rigchat", "data"), nil
}

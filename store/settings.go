// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/rigchat/kv"
)

// Settings keys used by the shell.
const (
	// KeyEndpoint holds the Ollama server address ("host:port").
	KeyEndpoint = "ip"

	// KeyAutoRename toggles the auto-title subflow, serialized "true"/"false".
	KeyAutoRename = "autoRename"
)

// =============================================================================
// SETTINGS STORE
// =============================================================================

// Settings provides flat string-to-string configuration on the substrate.
// Missing keys and read errors resolve to the empty string; write failures
// are logged and dropped.
type Settings struct {
	db  kv.Store
	log *zap.Logger
}

// NewSettings creates a settings store over the given substrate.
// A nil logger disables logging.
func NewSettings(db kv.Store, logger *zap.Logger) *Settings {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Settings{db: db, log: logger}
}

// Get returns the value for key, or "" if absent or on error.
func (s *Settings) Get(ctx context.Context, key string) string {
	value, err := s.db.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrKeyNotFound) {
			s.log.Error("failed to read setting", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return value
}

// Set stores value under key.
func (s *Settings) Set(ctx context.Context, key, value string) {
	if err := s.db.Set(ctx, key, value); err != nil {
		s.log.Error("failed to write setting", zap.String("key", key), zap.Error(err))
	}
}

// Bool reads key as a boolean. Anything other than "true" (case-insensitive)
// is false, including a missing key.
func (s *Settings) Bool(ctx context.Context, key string) bool {
	return strings.EqualFold(strings.TrimSpace(s.Get(ctx, key)), "true")
}

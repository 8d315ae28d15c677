// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package kv

import (
	"context"
	"errors"
	"strings"
)

// ErrKeyNotFound is returned by Get when the key has no stored value.
// Use errors.Is(err, ErrKeyNotFound) to check for it.
var ErrKeyNotFound = errors.New("key not found")

// ErrInvalidKey is returned for keys the store cannot represent.
var ErrInvalidKey = errors.New("invalid key")

// Store is a durable string-keyed, string-valued store.
//
// Keys are non-empty slash-separated paths ("ip", "chats/3"). Values are
// opaque strings. Implementations must make Set durable before returning and
// must treat Delete of a missing key as a no-op.
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys starting with prefix, in unspecified order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// validateKey rejects keys that could escape a path-based backend or that
// have no stable representation.
func validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if strings.HasPrefix(key, "/") || strings.HasSuffix(key, "/") {
		return ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return ErrInvalidKey
		}
	}
	return nil
}

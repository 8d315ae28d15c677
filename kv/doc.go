// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package kv provides the durable key-value substrate backing rigchat's
// stores.
//
// The substrate is minimal: string keys, string values,
// get/set/delete plus a prefix scan. No transactions, no watch. Everything
// richer (sessions, settings) is layered on top by the store package.
//
// # Key Types
//
//   - Store: the substrate interface
//   - FileStore: one file per key with atomic writes
//   - SQLiteStore: single-table SQLite backend (modernc.org/sqlite, pure Go)
//
// # Usage
//
//	db, err := kv.NewFileStore(dir)
//	err = db.Set(ctx, "ip", "127.0.0.1:11434")
//	value, err := db.Get(ctx, "ip")
//
// Keys are slash-separated paths; both backends reject empty segments and
// path traversal.
package kv

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store provides session and settings persistence for rigchat.
//
// Sessions are stored one record per substrate key ("chats/<id>") so that a
// write touches exactly one session. A persisted sequence record keeps id
// assignment monotonic across deletions. Settings are flat string values
// under their own keys ("ip", "autoRename").
//
// Both stores follow a log-and-continue error contract: read failures
// degrade to empty results, write failures are logged and dropped, and
// operations on unknown ids are silent no-ops. Callers never receive an
// error; the persisted state is simply the best the substrate allowed.
//
// # Usage
//
//	sessions := store.NewSessionStore(db, logger)
//	id := sessions.Create(ctx)
//	sessions.ReplaceMessages(ctx, id, msgs)
//	all := sessions.List(ctx)
//
//	settings := store.NewSettings(db, logger)
//	settings.Set(ctx, store.KeyEndpoint, "127.0.0.1:11434")
package store

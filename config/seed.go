// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"strconv"

	"github.com/jeranaias/rigchat/store"
)

// Seed copies config defaults into the settings store for any setting that
// has no value yet. User-edited settings are never overwritten; the file
// only fills the gaps on first run.
func Seed(ctx context.Context, cfg Config, settings *store.Settings) {
	if settings.Get(ctx, store.KeyEndpoint) == "" && cfg.Server.Host != "" {
		settings.Set(ctx, store.KeyEndpoint, cfg.Server.Host)
	}
	if settings.Get(ctx, store.KeyAutoRename) == "" {
		settings.Set(ctx, store.KeyAutoRename, strconv.FormatBool(cfg.Chat.AutoRename))
	}
}

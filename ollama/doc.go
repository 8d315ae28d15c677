// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ollama provides the HTTP client for communicating with Ollama API.
//
// rigchat's exchange protocol is strictly non-streaming: one POST to
// /api/chat with stream:false, one complete response. The client therefore
// exposes only the three operations the engine needs - a health probe, the
// model list (GET /api/tags) and the chat completion call - plus typed
// errors so callers can distinguish "not running" from "bad response".
//
// # Usage
//
//	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
//	    BaseURL: ollama.BaseURLFromHost(settings.Get(ctx, store.KeyEndpoint)),
//	})
//	models, err := client.ListModels(ctx)
//	resp, err := client.Chat(ctx, "llama3.2", messages)
package ollama

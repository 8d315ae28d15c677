// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package engine drives the prompt/response exchange cycle for rigchat.
//
// One Send call runs the full protocol: optimistic render of the user
// message, a single non-streaming request to the Ollama endpoint, the
// stale-response guard against navigation during the request, persistence of
// the updated history, and - after a session's first exchange, when enabled -
// the fire-and-forget auto-title subflow.
//
// # Concurrency
//
// The engine is single-flight: an atomic busy flag rejects a second Send
// while one is in flight. There is no queue and no cancellation of an
// in-flight request; switching sessions only suppresses the late response's
// effect on the visible chat array, never its persistence.
//
// # Usage
//
//	eng := engine.New(sessions, settings, client, runner, engine.Hooks{
//	    OnMessages: view.SetMessages,
//	    OnError:    view.ShowError,
//	}, logger)
//	eng.SetActive(id)
//	eng.Send(ctx, engine.SendRequest{SessionID: id, Prompt: text, Model: model, History: snapshot})
package engine

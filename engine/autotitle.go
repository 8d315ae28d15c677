// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/jeranaias/rigchat/chat"
	"github.com/jeranaias/rigchat/ollama"
)

// titleInstruction constrains the model to a bare, short answer.
const titleInstruction = "Give this conversation a name of three words or less. Reply with the name only, no quotes and no other text."

// titleOptions returns sampling parameters tuned for short, low-variance
// output: little randomness, a hard cap on length, and penalties against
// the model rambling.
func titleOptions() *ollama.Options {
	return &ollama.Options{
		Temperature:     0.2,
		TopP:            0.5,
		NumPredict:      12,
		RepeatPenalty:   1.3,
		PresencePenalty: 1.5,
	}
}

// autoTitle asks the endpoint to name the session after its first exchange
// and renames it with the reply verbatim; a verbose model produces a
// verbose title.
func (e *Engine) autoTitle(ctx context.Context, sessionID int64, model string, user, assistant chat.Message) error {
	messages := []ollama.Message{
		{Role: user.Role.String(), Content: user.Content},
		{Role: assistant.Role.String(), Content: assistant.Content},
		ollama.NewSystemMessage(titleInstruction),
	}

	resp, err := e.client.ChatWithOptions(ctx, model, messages, titleOptions())
	if err != nil {
		return err
	}

	e.sessions.Rename(ctx, sessionID, resp.Message.Content)
	e.log.Info("session auto-titled",
		zap.Int64("session", sessionID), zap.String("name", resp.Message.Content))
	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat contains the data structures for sessions and messages.
package chat

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"

	// RoleSystem is never persisted in a session; it only appears in the
	// instruction message of the auto-title request.
	RoleSystem Role = "system"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single turn in a conversation. Messages are append
// only: once part of a session they are never edited or removed
// individually.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`

	// Date is the creation timestamp in the canonical TimeLayout format.
	Date string `json:"date"`

	// Model records which model produced the content. Set only on
	// assistant messages.
	Model string `json:"model,omitempty"`
}

// NewUserMessage creates a user message stamped with the current time.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Date: Now()}
}

// NewAssistantMessage creates an assistant message attributed to model,
// stamped with the current time.
func NewAssistantMessage(content, model string) Message {
	return Message{Role: RoleAssistant, Content: content, Date: Now(), Model: model}
}

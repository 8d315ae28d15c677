// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "time"

// TimeLayout is the canonical timestamp format for sessions and messages:
// zero-padded, 24-hour clock, local time.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultName is the placeholder name given to a freshly created session.
const DefaultName = "New Chat"

// =============================================================================
// SESSION TYPE
// =============================================================================

// Session holds one persisted conversation: identity, display name, creation
// date and the ordered message history.
type Session struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Date is the creation timestamp in TimeLayout format. It is used only
	// as a fallback ordering key when Messages is empty.
	Date string `json:"date"`

	Messages []Message `json:"messages"`
}

// NewSession creates an empty session with the given id, the placeholder
// name and the current time as creation date.
func NewSession(id int64) Session {
	return Session{
		ID:       id,
		Name:     DefaultName,
		Date:     Now(),
		Messages: []Message{},
	}
}

// LastActivity returns the session's effective last-activity time: the date
// of the last message if any exist, otherwise the creation date. A timestamp
// that fails to parse yields the zero time, which sorts before everything.
func (s *Session) LastActivity() time.Time {
	date := s.Date
	if len(s.Messages) > 0 {
		date = s.Messages[len(s.Messages)-1].Date
	}
	t, err := ParseTime(date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// =============================================================================
// TIMESTAMP HELPERS
// =============================================================================

// Now returns the current local time in TimeLayout format.
func Now() string {
	return FormatTime(time.Now())
}

// FormatTime renders t in TimeLayout format.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a TimeLayout timestamp as local time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

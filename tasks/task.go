// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tasks provides a background runner for fire-and-forget work.
package tasks

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// TASK STATUS
// =============================================================================

// Status represents the current state of a background task.
type Status string

const (
	// StatusRunning indicates the task is currently executing
	StatusRunning Status = "Running"

	// StatusComplete indicates the task finished successfully
	StatusComplete Status = "Complete"

	// StatusFailed indicates the task returned an error or panicked
	StatusFailed Status = "Failed"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// =============================================================================
// TASK STRUCTURE
// =============================================================================

// Task records one background execution. Fields are read through accessors;
// the runner mutates them as the task progresses.
type Task struct {
	// ID is a unique identifier for this task
	ID string

	// Name is a short human-readable label (e.g. "auto-title")
	Name string

	mu      sync.Mutex
	status  Status
	started time.Time
	ended   time.Time
	errMsg  string
}

func newTask(name string) *Task {
	return &Task{
		ID:      uuid.NewString(),
		Name:    name,
		status:  StatusRunning,
		started: time.Now(),
	}
}

// Status returns the task's current status.
func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Err returns the failure message, or "" if the task did not fail.
func (t *Task) Err() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMsg
}

// Duration returns how long the task ran (or has been running).
func (t *Task) Duration() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ended.IsZero() {
		return time.Since(t.started)
	}
	return t.ended.Sub(t.started)
}

func (t *Task) finish(status Status, errMsg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	t.errMsg = errMsg
	t.ended = time.Now()
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"context"
	"errors"
	"testing"
)

func TestRunner_Complete(t *testing.T) {
	r := NewRunner(nil)

	task := r.Go(context.Background(), "noop", func(ctx context.Context) error {
		return nil
	})
	r.Wait()

	if task.Status() != StatusComplete {
		t.Errorf("Status = %q, want %q", task.Status(), StatusComplete)
	}
	if task.Err() != "" {
		t.Errorf("Err = %q, want empty", task.Err())
	}
	if task.ID == "" {
		t.Error("task has no ID")
	}
}

func TestRunner_Failure(t *testing.T) {
	r := NewRunner(nil)

	task := r.Go(context.Background(), "boom", func(ctx context.Context) error {
		return errors.New("endpoint unreachable")
	})
	r.Wait()

	if task.Status() != StatusFailed {
		t.Errorf("Status = %q, want %q", task.Status(), StatusFailed)
	}
	if task.Err() != "endpoint unreachable" {
		t.Errorf("Err = %q, want the task's error", task.Err())
	}
}

func TestRunner_PanicRecovered(t *testing.T) {
	r := NewRunner(nil)

	task := r.Go(context.Background(), "panic", func(ctx context.Context) error {
		panic("oops")
	})
	r.Wait() // must not crash the test binary

	if task.Status() != StatusFailed {
		t.Errorf("Status = %q, want %q after panic", task.Status(), StatusFailed)
	}
}

func TestRunner_Tasks(t *testing.T) {
	r := NewRunner(nil)

	r.Go(context.Background(), "a", func(ctx context.Context) error { return nil })
	r.Go(context.Background(), "b", func(ctx context.Context) error { return nil })
	r.Wait()

	if got := len(r.Tasks()); got != 2 {
		t.Errorf("Tasks returned %d entries, want 2", got)
	}
}

func TestRunner_GoReturnsImmediately(t *testing.T) {
	r := NewRunner(nil)
	release := make(chan struct{})

	task := r.Go(context.Background(), "slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	if task.Status() != StatusRunning {
		t.Errorf("Status = %q before completion, want %q", task.Status(), StatusRunning)
	}
	close(release)
	r.Wait()
}

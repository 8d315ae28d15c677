// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package tasks

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// =============================================================================
// RUNNER
// =============================================================================

// Runner executes tasks in the background. A task's failure is captured on
// the Task and logged; it never propagates to the code that scheduled it, so
// side flows cannot affect the primary flow's completion.
type Runner struct {
	log *zap.Logger

	mu    sync.Mutex
	tasks []*Task
	wg    sync.WaitGroup
}

// NewRunner creates a background task runner.
// A nil logger disables logging.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{log: logger}
}

// Go starts fn in the background and returns its Task handle immediately.
// Panics inside fn are recovered and recorded as failures.
func (r *Runner) Go(ctx context.Context, name string, fn func(context.Context) error) *Task {
	task := newTask(name)

	r.mu.Lock()
	r.tasks = append(r.tasks, task)
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				msg := fmt.Sprintf("panic: %v", rec)
				task.finish(StatusFailed, msg)
				r.log.Error("background task panicked",
					zap.String("task", name), zap.String("id", task.ID), zap.Any("panic", rec))
			}
		}()

		if err := fn(ctx); err != nil {
			task.finish(StatusFailed, err.Error())
			r.log.Warn("background task failed",
				zap.String("task", name), zap.String("id", task.ID), zap.Error(err))
			return
		}
		task.finish(StatusComplete, "")
	}()

	return task
}

// Tasks returns a snapshot of all tasks scheduled so far.
func (r *Runner) Tasks() []*Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Wait blocks until every scheduled task has finished. Intended for tests
// and shutdown.
func (r *Runner) Wait() {
	r.wg.Wait()
}

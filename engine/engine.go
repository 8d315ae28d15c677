// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jeranaias/rigchat/chat"
	"github.com/jeranaias/rigchat/ollama"
	"github.com/jeranaias/rigchat/store"
	"github.com/jeranaias/rigchat/tasks"
)

// ConnectionFailedMessage is the single user-facing string for any remote
// failure. DNS errors, timeouts and HTTP error statuses all collapse into
// it; the distinction lives only in the logs.
const ConnectionFailedMessage = "Could not reach the Ollama server. Check the address in Settings."

// NoActiveSession is the active-cell value when no session is displayed.
const NoActiveSession int64 = -1

// =============================================================================
// UI BOUNDARY
// =============================================================================

// Hooks is the engine's outbound interface to the UI shell. All fields are
// optional; a nil hook is skipped. Every hook is invoked from the goroutine
// that called Send; the title subflow never touches them.
type Hooks struct {
	// OnMessages replaces the visible chat array for a session.
	OnMessages func(sessionID int64, messages []chat.Message)

	// OnLoading reports the busy flag; the shell disables the send control
	// while true.
	OnLoading func(loading bool)

	// OnError surfaces a user-facing error string.
	OnError func(message string)

	// OnHaptic fires haptic feedback after a successful exchange.
	OnHaptic func()
}

func (h Hooks) messages(id int64, msgs []chat.Message) {
	if h.OnMessages != nil {
		h.OnMessages(id, msgs)
	}
}

func (h Hooks) loading(v bool) {
	if h.OnLoading != nil {
		h.OnLoading(v)
	}
}

func (h Hooks) error(msg string) {
	if h.OnError != nil {
		h.OnError(msg)
	}
}

func (h Hooks) haptic() {
	if h.OnHaptic != nil {
		h.OnHaptic()
	}
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine drives one prompt/response cycle at a time against the remote
// endpoint, keeping the visible chat array and the session store consistent.
type Engine struct {
	sessions *store.SessionStore
	settings *store.Settings
	client   *ollama.Client
	runner   *tasks.Runner
	hooks    Hooks
	log      *zap.Logger

	// active is the id of the currently displayed session; the shell
	// updates it on navigation and the stale-response guard reads it.
	active atomic.Int64

	// busy is the single-flight gate: true while an exchange is in flight.
	busy atomic.Bool
}

// New creates an exchange engine. A nil logger disables logging.
func New(sessions *store.SessionStore, settings *store.Settings, client *ollama.Client, runner *tasks.Runner, hooks Hooks, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		sessions: sessions,
		settings: settings,
		client:   client,
		runner:   runner,
		hooks:    hooks,
		log:      logger,
	}
	e.active.Store(NoActiveSession)
	return e
}

// SetActive records the currently displayed session. The shell must call
// this on every navigation.
func (e *Engine) SetActive(id int64) {
	e.active.Store(id)
}

// Active returns the currently displayed session id, or NoActiveSession.
func (e *Engine) Active() int64 {
	return e.active.Load()
}

// Busy reports whether an exchange is in flight.
func (e *Engine) Busy() bool {
	return e.busy.Load()
}

// =============================================================================
// SEND
// =============================================================================

// SendRequest captures everything one exchange needs at call time: the
// target session, the prompt, the selected model and a snapshot of the
// session's message history. Capturing the snapshot here means a later
// navigation cannot change what gets persisted.
type SendRequest struct {
	SessionID int64
	Prompt    string
	Model     string
	History   []chat.Message
}

// Send runs one prompt/response cycle. It is a no-op when the prompt is
// empty, no model is selected, or another exchange is already in flight.
//
// Failures never propagate: remote errors surface through Hooks.OnError as
// one generic message, persistence errors are logged by the store. The
// loading flag is cleared on every path.
func (e *Engine) Send(ctx context.Context, req SendRequest) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" || req.Model == "" {
		return
	}
	if !e.busy.CompareAndSwap(false, true) {
		return
	}
	e.hooks.loading(true)
	defer func() {
		e.busy.Store(false)
		e.hooks.loading(false)
	}()

	user := chat.NewUserMessage(prompt)

	// Optimistic update: render the user message before any network I/O.
	history := make([]chat.Message, 0, len(req.History)+2)
	history = append(history, req.History...)
	history = append(history, user)
	e.hooks.messages(req.SessionID, history)

	resp, err := e.client.Chat(ctx, req.Model, wireMessages(history))
	if err != nil {
		e.log.Warn("chat request failed",
			zap.Int64("session", req.SessionID), zap.String("model", req.Model), zap.Error(err))
		e.hooks.error(ConnectionFailedMessage)
		return
	}

	assistant := chat.NewAssistantMessage(resp.Message.Content, req.Model)
	history = append(history, assistant)

	// Stale-response guard: if the user navigated away while the request
	// was in flight, the reply must not appear in the now-visible session.
	// It is still persisted below so it is never lost.
	if e.active.Load() == req.SessionID {
		e.hooks.messages(req.SessionID, history)
	} else {
		e.log.Debug("response arrived for background session",
			zap.Int64("session", req.SessionID), zap.Int64("active", e.active.Load()))
	}

	e.sessions.ReplaceMessages(ctx, req.SessionID, history)
	e.hooks.haptic()

	if len(req.History) == 0 && e.settings.Bool(ctx, store.KeyAutoRename) {
		// Independent scheduled task: its failure is logged by the runner
		// and cannot touch this exchange's state. Detached from ctx so a
		// canceled UI context does not abort the rename.
		titleCtx := context.WithoutCancel(ctx)
		e.runner.Go(titleCtx, "auto-title", func(ctx context.Context) error {
			return e.autoTitle(ctx, req.SessionID, req.Model, user, assistant)
		})
	}
}

// wireMessages strips messages to the role/content pairs the endpoint
// expects; timestamps and model attribution stay local.
func wireMessages(messages []chat.Message) []ollama.Message {
	out := make([]ollama.Message, len(messages))
	for i, m := range messages {
		out[i] = ollama.Message{Role: m.Role.String(), Content: m.Content}
	}
	return out
}

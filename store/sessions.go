// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jeranaias/rigchat/chat"
	"github.com/jeranaias/rigchat/kv"
)

// ErrSessionNotFound is returned internally when a session id has no record.
// The public operations convert it to a logged no-op per the store contract.
var ErrSessionNotFound = errors.New("session not found")

const (
	// sessionPrefix is the substrate key prefix for session records. Each
	// session is one record, so writes touch a single session rather than
	// the whole collection.
	sessionPrefix = "chats/"

	// seqKey persists the next id to assign. Ids stay monotonic and are
	// never reused even after the highest-numbered session is deleted.
	seqKey = "chats/seq"
)

// =============================================================================
// SESSION STORE
// =============================================================================

// SessionStore provides CRUD over the persisted session collection.
//
// Every operation reads fresh from the substrate rather than trusting a
// cached copy. Failures follow the log-and-continue contract: reads degrade
// to an empty result, writes are logged and dropped, lookups of unknown ids
// are silent no-ops. Nothing is raised to the caller.
type SessionStore struct {
	db  kv.Store
	log *zap.Logger
}

// NewSessionStore creates a session store over the given substrate.
// A nil logger disables logging.
func NewSessionStore(db kv.Store, logger *zap.Logger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionStore{db: db, log: logger}
}

// =============================================================================
// READ OPERATIONS
// =============================================================================

// List returns all persisted sessions sorted by id ascending. Corrupt or
// unreadable records are logged and skipped; on substrate failure the result
// is empty.
func (s *SessionStore) List(ctx context.Context) []chat.Session {
	keys, err := s.db.Keys(ctx, sessionPrefix)
	if err != nil {
		s.log.Error("failed to list session records", zap.Error(err))
		return nil
	}

	sessions := make([]chat.Session, 0, len(keys))
	for _, key := range keys {
		if key == seqKey {
			continue
		}
		value, err := s.db.Get(ctx, key)
		if err != nil {
			s.log.Error("failed to read session record", zap.String("key", key), zap.Error(err))
			continue
		}
		var sess chat.Session
		if err := json.Unmarshal([]byte(value), &sess); err != nil {
			s.log.Error("failed to decode session record", zap.String("key", key), zap.Error(err))
			continue
		}
		sessions = append(sessions, sess)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID < sessions[j].ID
	})
	return sessions
}

// Name returns the display name of the session with the given id.
func (s *SessionStore) Name(ctx context.Context, id int64) (string, bool) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return "", false
	}
	return sess.Name, true
}

// =============================================================================
// WRITE OPERATIONS
// =============================================================================

// Create appends a new empty session and returns its id. Ids are assigned
// monotonically and never reused.
func (s *SessionStore) Create(ctx context.Context) int64 {
	id := s.nextID(ctx)
	s.put(ctx, chat.NewSession(id))

	if err := s.db.Set(ctx, seqKey, strconv.FormatInt(id+1, 10)); err != nil {
		s.log.Error("failed to persist id sequence", zap.Error(err))
	}
	return id
}

// Delete removes the session with the given id. Unknown ids are a no-op.
func (s *SessionStore) Delete(ctx context.Context, id int64) {
	if err := s.db.Delete(ctx, sessionKey(id)); err != nil {
		s.log.Error("failed to delete session", zap.Int64("id", id), zap.Error(err))
	}
}

// Rename sets the display name of the session with the given id. If the id
// is unknown the operation is logged and nothing is written.
func (s *SessionStore) Rename(ctx context.Context, id int64, name string) {
	sess, err := s.get(ctx, id)
	if err != nil {
		s.log.Error("rename failed", zap.Int64("id", id), zap.Error(err))
		return
	}
	sess.Name = name
	s.put(ctx, sess)
}

// ReplaceMessages replaces the session's message history wholesale. If the
// id is unknown the operation is logged and nothing is written.
func (s *SessionStore) ReplaceMessages(ctx context.Context, id int64, messages []chat.Message) {
	sess, err := s.get(ctx, id)
	if err != nil {
		s.log.Error("replace messages failed", zap.Int64("id", id), zap.Error(err))
		return
	}
	if messages == nil {
		messages = []chat.Message{}
	}
	sess.Messages = messages
	s.put(ctx, sess)
}

// =============================================================================
// INTERNAL
// =============================================================================

func (s *SessionStore) get(ctx context.Context, id int64) (chat.Session, error) {
	value, err := s.db.Get(ctx, sessionKey(id))
	if errors.Is(err, kv.ErrKeyNotFound) {
		return chat.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return chat.Session{}, err
	}

	var sess chat.Session
	if err := json.Unmarshal([]byte(value), &sess); err != nil {
		return chat.Session{}, err
	}
	return sess, nil
}

func (s *SessionStore) put(ctx context.Context, sess chat.Session) {
	data, err := json.Marshal(sess)
	if err != nil {
		s.log.Error("failed to encode session", zap.Int64("id", sess.ID), zap.Error(err))
		return
	}
	if err := s.db.Set(ctx, sessionKey(sess.ID), string(data)); err != nil {
		s.log.Error("failed to write session", zap.Int64("id", sess.ID), zap.Error(err))
	}
}

// nextID computes the next session id: the persisted sequence if present,
// but never lower than max(existing ids)+1 so stores written before the
// sequence record existed still assign correctly.
func (s *SessionStore) nextID(ctx context.Context) int64 {
	var next int64
	for _, sess := range s.List(ctx) {
		if sess.ID+1 > next {
			next = sess.ID + 1
		}
	}

	value, err := s.db.Get(ctx, seqKey)
	if err == nil {
		if seq, perr := strconv.ParseInt(strings.TrimSpace(value), 10, 64); perr == nil && seq > next {
			next = seq
		}
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		s.log.Error("failed to read id sequence", zap.Error(err))
	}
	return next
}

func sessionKey(id int64) string {
	return sessionPrefix + strconv.FormatInt(id, 10)
}

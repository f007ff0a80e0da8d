package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/ozdilmelih/FlagGame/internal/quiz"
)

// ErrSessionNotFound is returned when the chat has no game in memory.
var ErrSessionNotFound = errors.New("quiz session not found")

// entry guards one engine. Engines are not safe for concurrent use,
// so every call into an engine goes through mu.
type entry struct {
	mu       sync.Mutex
	engine   *quiz.Engine
	lastUsed time.Time
	used     bool // fn has succeeded at least once
}

// SessionStorage provides in-memory storage for quiz engines by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entry
	now      func() time.Time
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entry),
		now:      time.Now,
	}
}

// WithSession runs fn with the chat's engine, serialized with every other call for that chat.
func (s *SessionStorage) WithSession(chatID int64, fn func(e *quiz.Engine) error) error {
	s.mu.RLock()
	ent, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	return s.run(ent, fn)
}

// WithOrCreateSession is WithSession that first creates the engine with newEngine if the chat has none.
// A created engine is dropped again if fn fails before any call on it has succeeded.
func (s *SessionStorage) WithOrCreateSession(chatID int64, newEngine func() *quiz.Engine, fn func(e *quiz.Engine) error) error {
	s.mu.Lock()
	ent, ok := s.sessions[chatID]
	if !ok {
		ent = &entry{engine: newEngine(), lastUsed: s.now()}
		s.sessions[chatID] = ent
	}
	s.mu.Unlock()

	err := s.run(ent, fn)
	if err != nil && !ok {
		s.dropUnused(chatID, ent)
	}
	return err
}

func (s *SessionStorage) run(ent *entry, fn func(e *quiz.Engine) error) error {
	ent.mu.Lock()
	defer ent.mu.Unlock()

	ent.lastUsed = s.now()
	if err := fn(ent.engine); err != nil {
		return err
	}
	ent.used = true
	return nil
}

// dropUnused removes ent unless it was replaced, is busy or has served a successful call.
func (s *SessionStorage) dropUnused(chatID int64, ent *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[chatID] != ent || !ent.mu.TryLock() {
		return
	}
	if !ent.used {
		delete(s.sessions, chatID)
	}
	ent.mu.Unlock()
}

// Delete removes the chat's session.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// EvictIdle removes sessions last used before cutoff and returns how many were removed.
// Sessions that are in use right now are skipped.
func (s *SessionStorage) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for chatID, ent := range s.sessions {
		if !ent.mu.TryLock() {
			continue
		}
		if ent.lastUsed.Before(cutoff) {
			delete(s.sessions, chatID)
			evicted++
		}
		ent.mu.Unlock()
	}

	return evicted
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

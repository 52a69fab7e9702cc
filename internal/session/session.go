// Package session ties an in-memory resume store to durable storage.
// Every mutation arms a debounce timer; when edits go quiet the full
// snapshot is written in one save, so a burst of keystrokes costs one
// write instead of dozens.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultDebounce is how long edits must go quiet before a save fires.
const DefaultDebounce = 1500 * time.Millisecond

// Saver persists a full resume snapshot.
type Saver interface {
	SaveResume(ctx context.Context, id uuid.UUID, d types.ResumeData) error
}

// Session owns the editing state for one resume: the store the handlers
// mutate plus the debounced writer that keeps the database in sync.
type Session struct {
	ID    uuid.UUID
	Store *store.Store

	saver    Saver
	debounce time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	closed  bool
}

// New creates a session around an already-loaded store. A zero debounce
// uses DefaultDebounce.
func New(id uuid.UUID, st *store.Store, saver Saver, debounce time.Duration) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	s := &Session{
		ID:       id,
		Store:    st,
		saver:    saver,
		debounce: debounce,
	}
	st.Subscribe(func(types.ResumeData) { s.arm() })
	return s
}

// arm starts or restarts the debounce timer.
func (s *Session) arm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.save)
}

func (s *Session) save() {
	s.mu.Lock()
	if s.closed || !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.saver.SaveResume(ctx, s.ID, s.Store.Snapshot()); err != nil {
		log.Printf("session %s: save failed: %v", s.ID, err)
		// Keep the snapshot dirty so the next mutation retries.
		s.mu.Lock()
		if !s.closed {
			s.pending = true
		}
		s.mu.Unlock()
	}
}

// Flush writes any pending snapshot immediately.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	dirty := s.pending
	s.pending = false
	s.mu.Unlock()

	if !dirty {
		return nil
	}
	return s.saver.SaveResume(ctx, s.ID, s.Store.Snapshot())
}

// Close flushes pending work and stops the session's timer. The session
// must not be used afterwards.
func (s *Session) Close(ctx context.Context) error {
	err := s.Flush(ctx)

	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	return err
}

// Manager hands out sessions by resume ID, creating each one lazily on
// first use.
type Manager struct {
	saver    Saver
	debounce time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates an empty session manager.
func NewManager(saver Saver, debounce time.Duration) *Manager {
	return &Manager{
		saver:    saver,
		debounce: debounce,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Get returns the live session for a resume, or nil when none is open.
func (m *Manager) Get(id uuid.UUID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[id]
}

// Open returns the session for a resume, creating one around the given
// document when it is not already open. The boolean reports whether a
// session was created.
func (m *Manager) Open(id uuid.UUID, d types.ResumeData) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, false
	}

	st := store.Load(d)
	s := New(id, st, m.saver, m.debounce)
	m.sessions[id] = s
	return s, true
}

// Close flushes and removes the session for a resume. Closing a resume
// with no open session is a no-op.
func (m *Manager) Close(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return nil
	}
	return s.Close(ctx)
}

// CloseAll flushes and closes every open session, returning the first
// error encountered. Used during graceful shutdown.
func (m *Manager) CloseAll(ctx context.Context) error {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	var firstErr error
	for _, s := range sessions {
		if err := s.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

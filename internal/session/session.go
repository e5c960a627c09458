// Package session keeps in-memory editing sessions, one CV document each.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/editor"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("session not found")

// Session is one user's editor. All access goes through Do.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	editor     *editor.Editor
	lastAccess time.Time
}

// Do runs fn with exclusive access to the session's editor.
func (s *Session) Do(fn func(*editor.Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccess = time.Now()
	return fn(s.editor)
}

// LastAccess reports when the session was last used.
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccess
}

// Store maps session ids to sessions and expires idle ones.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	idleTimeout time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewStore returns an empty store. A zero idleTimeout disables expiry.
func NewStore(idleTimeout time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

// Create starts a session over an empty document.
func (st *Store) Create() *Session {
	now := st.now()
	s := &Session{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		editor:     editor.New(),
		lastAccess: now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Debug("session created", "session_id", s.ID)
	return s
}

// Get returns the session for id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete ends the session for id.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	st.logger.Debug("session deleted", "session_id", id)
	return nil
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Run expires idle sessions every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	if st.idleTimeout <= 0 || interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := st.ExpireIdle(); n > 0 {
				st.logger.Info("expired idle sessions", "count", n, "remaining", st.Len())
			}
		case <-ctx.Done():
			return
		}
	}
}

// ExpireIdle removes sessions unused for longer than the idle timeout and
// returns how many were removed.
func (st *Store) ExpireIdle() int {
	if st.idleTimeout <= 0 {
		return 0
	}
	cutoff := st.now().Add(-st.idleTimeout)

	st.mu.RLock()
	var stale []string
	for id, s := range st.sessions {
		if s.LastAccess().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	st.mu.RUnlock()

	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for _, id := range stale {
		s, ok := st.sessions[id]
		// touched again between the scan and now
		if !ok || !s.LastAccess().Before(cutoff) {
			continue
		}
		delete(st.sessions, id)
		removed++
	}
	return removed
}

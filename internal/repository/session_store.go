package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/quickbasket/assistant/internal/domain"
)

// SessionStore holds live session contexts in memory. Sessions do not
// survive a restart; cross-restart persistence is out of scope.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.SessionContext
	locks    map[string]*sync.Mutex
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.SessionContext),
		locks:    make(map[string]*sync.Mutex),
	}
}

// Create allocates a new session with a fresh ID.
func (s *SessionStore) Create() *domain.SessionContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := domain.NewSessionContext(uuid.New().String())
	s.sessions[session.ID] = session
	s.locks[session.ID] = &sync.Mutex{}
	return session
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(id string) (*domain.SessionContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	delete(s.locks, id)
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Do runs fn with the session locked, serializing turns within the
// session. It returns false when the session does not exist.
func (s *SessionStore) Do(id string, fn func(*domain.SessionContext)) bool {
	s.mu.Lock()
	session, ok := s.sessions[id]
	lock := s.locks[id]
	s.mu.Unlock()
	if !ok {
		return false
	}

	lock.Lock()
	defer lock.Unlock()
	fn(session)
	return true
}

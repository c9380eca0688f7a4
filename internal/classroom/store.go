package classroom

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps the open sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	limit    int
}

// NewStore returns an empty store. A limit of zero means unbounded.
func NewStore(limit int) *Store {
	return &Store{sessions: make(map[string]*Session), limit: limit}
}

func (st *Store) add(build func(id string) *Session) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.limit > 0 && len(st.sessions) >= st.limit {
		return nil, ErrSessionLimit
	}
	s := build(uuid.NewString())
	st.sessions[s.ID] = s
	return s, nil
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete removes a session.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, id)
	return nil
}

// Expire removes every session idle since before cutoff and returns their ids.
func (st *Store) Expire(cutoff time.Time) []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	var expired []string
	for id, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(st.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// Len returns the number of open sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

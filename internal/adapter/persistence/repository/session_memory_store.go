package repository

import (
	"context"
	"sync"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase/interfaces"
)

// SessionMemoryStore holds auth sessions for a single replica.
type SessionMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]entities.AuthSession
	now      func() time.Time
}

var _ interfaces.ITokenStore = (*SessionMemoryStore)(nil)

func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{sessions: map[string]entities.AuthSession{}, now: time.Now}
}

func (s *SessionMemoryStore) Save(_ context.Context, session entities.AuthSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, other := range s.sessions {
		if now.After(other.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *SessionMemoryStore) Get(_ context.Context, id string) (entities.AuthSession, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	return session, ok, nil
}

func (s *SessionMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"
)

type sessionEntry struct {
	session  domain.Session
	deadline time.Time
}

type SessionStore struct {
	mu    sync.Mutex
	items map[string]sessionEntry
	now   func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{items: make(map[string]sessionEntry), now: time.Now}
}

func (s *SessionStore) Get(ctx context.Context, workspaceID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[workspaceID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !e.deadline.IsZero() && s.now().After(e.deadline) {
		delete(s.items, workspaceID)
		return nil, domain.ErrNotFound
	}
	session := e.session
	return &session, nil
}

func (s *SessionStore) Set(ctx context.Context, workspaceID string, session *domain.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := sessionEntry{session: *session}
	if ttl > 0 {
		e.deadline = s.now().Add(ttl)
	}
	s.items[workspaceID] = e
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, workspaceID string) error {
	s.mu.Lock()
	delete(s.items, workspaceID)
	s.mu.Unlock()
	return nil
}

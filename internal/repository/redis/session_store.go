package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cvcraft-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionStore struct {
	client goredis.Cmdable
}

func NewSessionStore(client goredis.Cmdable) domain.SessionStore {
	return &sessionStore{client: client}
}

func (s *sessionStore) Get(ctx context.Context, workspaceID string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+workspaceID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

func (s *sessionStore) Set(ctx context.Context, workspaceID string, session *domain.Session, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+workspaceID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, workspaceID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+workspaceID).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cvcraft-backend/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "cv-data:"

type snapshotStore struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewSnapshotStore keeps local snapshots in Redis. A zero ttl keeps them
// until deleted.
func NewSnapshotStore(client goredis.Cmdable, ttl time.Duration) domain.LocalStore {
	return &snapshotStore{client: client, ttl: ttl}
}

func (s *snapshotStore) Load(ctx context.Context, key string) (*domain.CVDocument, error) {
	raw, err := s.client.Get(ctx, snapshotKeyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get snapshot: %w", err)
	}
	return domain.DecodeSnapshot(raw)
}

func (s *snapshotStore) Save(ctx context.Context, key string, doc *domain.CVDocument) error {
	raw, err := domain.EncodeSnapshot(doc)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, snapshotKeyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, snapshotKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete snapshot: %w", err)
	}
	return nil
}

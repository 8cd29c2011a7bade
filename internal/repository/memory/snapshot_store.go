// Package memory holds in-process stores for development and tests.
package memory

import (
	"context"
	"sync"

	"cvcraft-backend/internal/domain"
)

// SnapshotStore keeps encoded snapshots, so loads go through the same
// decoding as the durable stores.
type SnapshotStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{items: make(map[string][]byte)}
}

func (s *SnapshotStore) Load(ctx context.Context, key string) (*domain.CVDocument, error) {
	s.mu.RLock()
	raw, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return domain.DecodeSnapshot(raw)
}

func (s *SnapshotStore) Save(ctx context.Context, key string, doc *domain.CVDocument) error {
	raw, err := domain.EncodeSnapshot(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// Put stores raw bytes under key, bypassing encoding.
func (s *SnapshotStore) Put(key string, raw []byte) {
	s.mu.Lock()
	s.items[key] = append([]byte(nil), raw...)
	s.mu.Unlock()
}

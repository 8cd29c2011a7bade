// Package file keeps local snapshots as one JSON file per workspace.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"cvcraft-backend/internal/domain"

	"github.com/google/uuid"
)

type snapshotStore struct {
	mu  sync.Mutex
	dir string
}

func NewSnapshotStore(dir string) (domain.LocalStore, error) {
	if dir == "" {
		dir = "./data/snapshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &snapshotStore{dir: dir}, nil
}

// path accepts only workspace ids, which are UUIDs, so keys can never
// name a file outside dir.
func (s *snapshotStore) path(key string) (string, error) {
	id, err := uuid.Parse(key)
	if err != nil {
		return "", fmt.Errorf("invalid snapshot key %q: %w", key, err)
	}
	return filepath.Join(s.dir, "cv-data-"+id.String()+".json"), nil
}

func (s *snapshotStore) Load(ctx context.Context, key string) (*domain.CVDocument, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return domain.DecodeSnapshot(raw)
}

// Save replaces the snapshot atomically through a temp file and rename.
func (s *snapshotStore) Save(ctx context.Context, key string, doc *domain.CVDocument) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	raw, err := domain.EncodeSnapshot(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (s *snapshotStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"

	"github.com/google/uuid"
)

type remoteData struct {
	doc    *domain.CVDocument
	custom *domain.Customization
}

// RemoteStore stands in for the database when DATABASE_URL is unset.
type RemoteStore struct {
	mu      sync.Mutex
	headers map[string]domain.DocumentHeader
	data    map[string]remoteData
	now     func() time.Time
}

func NewRemoteStore() *RemoteStore {
	return &RemoteStore{
		headers: make(map[string]domain.DocumentHeader),
		data:    make(map[string]remoteData),
		now:     time.Now,
	}
}

func (s *RemoteStore) latest(userID string) (*domain.DocumentHeader, bool) {
	var owned []domain.DocumentHeader
	for _, h := range s.headers {
		if h.UserID == userID {
			owned = append(owned, h)
		}
	}
	if len(owned) == 0 {
		return nil, false
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].UpdatedAt.Equal(owned[j].UpdatedAt) {
			return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
		}
		return owned[i].ID < owned[j].ID
	})
	h := owned[0]
	return &h, true
}

func (s *RemoteStore) LatestByOwner(ctx context.Context, userID string) (*domain.DocumentHeader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.latest(userID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

func (s *RemoteStore) GetData(ctx context.Context, documentID string) (*domain.DocumentData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.data[documentID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := &domain.DocumentData{DocumentID: documentID, Document: d.doc.Clone()}
	if d.custom != nil {
		c := *d.custom
		out.Customization = &c
	}
	return out, nil
}

func (s *RemoteStore) Create(ctx context.Context, userID, title string) (*domain.DocumentHeader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.latest(userID); ok {
		return h, nil
	}
	now := s.now()
	h := domain.DocumentHeader{ID: uuid.NewString(), Title: title, UserID: userID, CreatedAt: now, UpdatedAt: now}
	s.headers[h.ID] = h
	s.data[h.ID] = remoteData{doc: domain.NewCVDocument()}
	return &h, nil
}

func (s *RemoteStore) CreateData(ctx context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[documentID]; !ok {
		s.data[documentID] = remoteData{doc: domain.NewCVDocument()}
	}
	return nil
}

func (s *RemoteStore) UpdateData(ctx context.Context, documentID string, doc *domain.CVDocument, custom domain.Customization) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[documentID]; !ok {
		return domain.ErrNotFound
	}
	s.data[documentID] = remoteData{doc: doc.Clone(), custom: &custom}
	return nil
}

func (s *RemoteStore) Touch(ctx context.Context, documentID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.headers[documentID]
	if !ok {
		return domain.ErrNotFound
	}
	h.UpdatedAt = at
	s.headers[documentID] = h
	return nil
}

// Counts reports how many header and data records exist.
func (s *RemoteStore) Counts() (headers, data int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.headers), len(s.data)
}

package usecase_test

import (
	"context"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock stores
type MockRemoteStore struct {
	mock.Mock
}

func (m *MockRemoteStore) LatestByOwner(ctx context.Context, userID string) (*domain.DocumentHeader, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentHeader), args.Error(1)
}

func (m *MockRemoteStore) GetData(ctx context.Context, documentID string) (*domain.DocumentData, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentData), args.Error(1)
}

func (m *MockRemoteStore) Create(ctx context.Context, userID, title string) (*domain.DocumentHeader, error) {
	args := m.Called(ctx, userID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentHeader), args.Error(1)
}

func (m *MockRemoteStore) CreateData(ctx context.Context, documentID string) error {
	return m.Called(ctx, documentID).Error(0)
}

func (m *MockRemoteStore) UpdateData(ctx context.Context, documentID string, doc *domain.CVDocument, custom domain.Customization) error {
	return m.Called(ctx, documentID, doc, custom).Error(0)
}

func (m *MockRemoteStore) Touch(ctx context.Context, documentID string, at time.Time) error {
	return m.Called(ctx, documentID, at).Error(0)
}

type MockLocalStore struct {
	mock.Mock
}

func (m *MockLocalStore) Load(ctx context.Context, key string) (*domain.CVDocument, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CVDocument), args.Error(1)
}

func (m *MockLocalStore) Save(ctx context.Context, key string, doc *domain.CVDocument) error {
	return m.Called(ctx, key, doc).Error(0)
}

func (m *MockLocalStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) Name() string { return "google" }

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	return "https://accounts.example/auth?state=" + state
}

func (m *MockOAuthProvider) Exchange(ctx context.Context, code string) (*domain.OAuthUser, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OAuthUser), args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(token string) (*domain.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenClaims), args.Error(1)
}

// fakeIdentity is a hand-driven identity provider: tests set the session
// and emit events.
type fakeIdentity struct {
	mu      sync.Mutex
	session *domain.Session
	err     error
	subs    map[int]func(domain.AuthEvent)
	next    int
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{subs: make(map[int]func(domain.AuthEvent))}
}

func (f *fakeIdentity) GetSession(ctx context.Context, workspaceID string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session, f.err
}

func (f *fakeIdentity) Subscribe(workspaceID string, fn func(domain.AuthEvent)) domain.Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	id := f.next
	f.subs[id] = fn
	return unsubscribeFunc(func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	})
}

func (f *fakeIdentity) set(session *domain.Session, err error) {
	f.mu.Lock()
	f.session, f.err = session, err
	f.mu.Unlock()
}

func (f *fakeIdentity) emit(event domain.AuthEvent) {
	f.mu.Lock()
	fns := make([]func(domain.AuthEvent), 0, len(f.subs))
	for _, fn := range f.subs {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(event)
	}
}

func (f *fakeIdentity) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

type unsubscribeFunc func()

func (u unsubscribeFunc) Unsubscribe() { u() }

// countingRemote wraps a remote store and counts data writes.
type countingRemote struct {
	domain.RemoteStore
	mu      sync.Mutex
	writes  []time.Time
	lastDoc *domain.CVDocument
}

func (c *countingRemote) UpdateData(ctx context.Context, documentID string, doc *domain.CVDocument, custom domain.Customization) error {
	c.mu.Lock()
	c.writes = append(c.writes, time.Now())
	c.lastDoc = doc.Clone()
	c.mu.Unlock()
	return c.RemoteStore.UpdateData(ctx, documentID, doc, custom)
}

func (c *countingRemote) writeTimes() []time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Time(nil), c.writes...)
}

func (c *countingRemote) last() *domain.CVDocument {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastDoc
}

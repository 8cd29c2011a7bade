package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/repository/memory"
	"cvcraft-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type env struct {
	manager  *usecase.WorkspaceManager
	local    *memory.SnapshotStore
	store    *memory.RemoteStore
	remote   *countingRemote
	identity *fakeIdentity
	clock    *testClock
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		local:    memory.NewSnapshotStore(),
		store:    memory.NewRemoteStore(),
		identity: newFakeIdentity(),
		clock:    &testClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)},
	}
	e.remote = &countingRemote{RemoteStore: e.store}
	e.manager = e.newManager()
	t.Cleanup(func() { e.manager.CloseAll(context.Background()) })
	return e
}

func (e *env) newManager() *usecase.WorkspaceManager {
	return usecase.NewWorkspaceManager(usecase.WorkspaceConfig{
		Local:        e.local,
		Remote:       e.remote,
		Identity:     e.identity,
		AutosaveIdle: testIdle,
		IdleTTL:      time.Minute,
		Now:          e.clock.Now,
	})
}

var jane = &domain.Session{UserID: "google:42", Email: "jane@example.com", Provider: "google"}

func TestWorkspace_OpenAnonymous(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	ws, created := e.manager.Open(ctx, "")
	require.True(t, created)
	_, err := uuid.Parse(ws.ID)
	require.NoError(t, err, "fresh workspaces get a uuid")
	assert.Equal(t, domain.ModeLocal, ws.Persistence.Mode())
	assert.True(t, ws.Builder.Snapshot().IsEmpty())

	_, err = ws.Builder.SetPersonalInfo("fullName", "Jane")
	require.NoError(t, err)

	saved, err := e.local.Load(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", saved.PersonalInfo.FullName, "local mode writes on every change")

	again, created := e.manager.Open(ctx, ws.ID)
	assert.False(t, created)
	assert.Same(t, ws, again)
}

func TestWorkspace_RestoresLocalSnapshot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	id := uuid.NewString()

	doc := docWithName("Jane")
	doc.Skills = []domain.Skill{{ID: 7, Name: "Go", Level: domain.SkillExpert}}
	require.NoError(t, e.local.Save(ctx, id, doc))

	ws, _ := e.manager.Open(ctx, id)
	assert.Equal(t, doc, ws.Builder.Snapshot())
}

func TestWorkspace_CorruptSnapshotYieldsEmptyDocument(t *testing.T) {
	e := newEnv(t)
	id := uuid.NewString()
	e.local.Put(id, []byte(`{"personalInfo": [`))

	ws, _ := e.manager.Open(context.Background(), id)
	assert.True(t, ws.Builder.Snapshot().IsEmpty())
	assert.Equal(t, domain.ModeLocal, ws.Persistence.Mode())
}

func TestWorkspace_FreshRemoteUser(t *testing.T) {
	e := newEnv(t)
	e.identity.set(jane, nil)
	ctx := context.Background()

	ws, _ := e.manager.Open(ctx, "")
	require.Equal(t, domain.ModeRemote, ws.Persistence.Mode())
	docID := ws.Persistence.DocumentID()
	require.NotEmpty(t, docID)

	headers, data := e.store.Counts()
	assert.Equal(t, 1, headers)
	assert.Equal(t, 1, data)

	// a later load, from another workspace, lands on the same document
	other, _ := e.manager.Open(ctx, "")
	assert.NotEqual(t, ws.ID, other.ID)
	assert.Equal(t, docID, other.Persistence.DocumentID())
	headers, data = e.store.Counts()
	assert.Equal(t, 1, headers)
	assert.Equal(t, 1, data)
}

func TestWorkspace_RemoteEditsAreDebounced(t *testing.T) {
	e := newEnv(t)
	e.identity.set(jane, nil)
	ctx := context.Background()
	ws, _ := e.manager.Open(ctx, "")

	ws.Builder.SetPersonalInfo("fullName", "Jane")
	ws.Builder.Add(domain.SectionSkills, domain.NewEntryInput{Name: "Go"})
	ws.Builder.Add(domain.SectionSkills, domain.NewEntryInput{Name: "SQL"})

	assert.Empty(t, e.remote.writeTimes())
	assert.Eventually(t, func() bool { return len(e.remote.writeTimes()) == 1 }, time.Second, 5*time.Millisecond)

	data, err := e.store.GetData(ctx, ws.Persistence.DocumentID())
	require.NoError(t, err)
	assert.Equal(t, "Jane", data.Document.PersonalInfo.FullName)
	assert.Len(t, data.Document.Skills, 2)

	_, err = e.local.Load(ctx, ws.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "remote mode leaves local storage alone")
}

func TestWorkspace_RemoteCustomizationRestored(t *testing.T) {
	e := newEnv(t)
	e.identity.set(jane, nil)
	ctx := context.Background()

	header, err := e.store.Create(ctx, jane.UserID, "My CV")
	require.NoError(t, err)
	require.NoError(t, e.store.UpdateData(ctx, header.ID, docWithName("Jane"), domain.Customization{Theme: "Fresh Green"}))

	ws, _ := e.manager.Open(ctx, "")
	assert.Equal(t, "Jane", ws.Builder.Snapshot().PersonalInfo.FullName)
	custom := ws.Customization()
	assert.Equal(t, "Fresh Green", custom.Theme)
	assert.Equal(t, domain.DefaultFontFamily, custom.FontFamily)
}

func TestWorkspace_MissingDataRecordIsCreated(t *testing.T) {
	remote := new(MockRemoteStore)
	remote.On("LatestByOwner", mock.Anything, jane.UserID).Return(&domain.DocumentHeader{ID: "doc-1", UserID: jane.UserID}, nil).Once()
	remote.On("GetData", mock.Anything, "doc-1").Return(nil, domain.ErrNotFound).Once()
	remote.On("CreateData", mock.Anything, "doc-1").Return(nil).Once()

	identity := newFakeIdentity()
	identity.set(jane, nil)
	manager := usecase.NewWorkspaceManager(usecase.WorkspaceConfig{Remote: remote, Identity: identity, AutosaveIdle: testIdle})

	ws, _ := manager.Open(context.Background(), "")
	assert.Equal(t, "doc-1", ws.Persistence.DocumentID())
	assert.True(t, ws.Builder.Snapshot().IsEmpty())
	remote.AssertExpectations(t)
	remote.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkspace_RemoteFailureStaysRemote(t *testing.T) {
	remote := new(MockRemoteStore)
	remote.On("LatestByOwner", mock.Anything, jane.UserID).Return(nil, errors.New("connection refused"))

	identity := newFakeIdentity()
	identity.set(jane, nil)
	manager := usecase.NewWorkspaceManager(usecase.WorkspaceConfig{Remote: remote, Identity: identity, AutosaveIdle: testIdle})

	ws, _ := manager.Open(context.Background(), "")
	assert.Equal(t, domain.ModeRemote, ws.Persistence.Mode())
	assert.Empty(t, ws.Persistence.DocumentID(), "edits are held until a document resolves")
}

func TestWorkspace_IdentityErrorFallsBackToLocal(t *testing.T) {
	e := newEnv(t)
	e.identity.set(nil, errors.New("identity provider unreachable"))

	ws, _ := e.manager.Open(context.Background(), "")
	assert.Equal(t, domain.ModeLocal, ws.Persistence.Mode())

	notices := ws.DrainNotices()
	require.Len(t, notices, 1)
	assert.Equal(t, domain.NoticeError, notices[0].Level)
	assert.Empty(t, ws.DrainNotices(), "notices are drained on read")
}

func TestWorkspace_SignInAndOut(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	ws, _ := e.manager.Open(ctx, "")
	require.Equal(t, domain.ModeLocal, ws.Persistence.Mode())

	e.identity.set(jane, nil)
	e.identity.emit(domain.AuthEvent{Type: domain.AuthSignedIn, WorkspaceID: ws.ID, Session: jane})

	require.Equal(t, domain.ModeRemote, ws.Persistence.Mode())
	assert.NotEmpty(t, ws.Persistence.DocumentID())
	require.NotNil(t, ws.State().Session)
	assert.Equal(t, jane.UserID, ws.State().Session.UserID)

	ws.Builder.SetPersonalInfo("fullName", "Jane Remote")

	e.identity.set(nil, nil)
	e.identity.emit(domain.AuthEvent{Type: domain.AuthSignedOut, WorkspaceID: ws.ID})

	assert.Equal(t, domain.ModeLocal, ws.Persistence.Mode())
	assert.Empty(t, ws.Persistence.DocumentID())
	assert.Nil(t, ws.State().Session)
	require.Len(t, e.remote.writeTimes(), 1, "pending remote save is flushed on sign-out")

	saved, err := e.local.Load(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Remote", saved.PersonalInfo.FullName)
}

func TestWorkspace_RepeatedSignInKeepsPendingEdits(t *testing.T) {
	e := newEnv(t)
	e.identity.set(jane, nil)
	ctx := context.Background()
	ws, _ := e.manager.Open(ctx, "")
	require.Equal(t, domain.ModeRemote, ws.Persistence.Mode())
	docID := ws.Persistence.DocumentID()

	ws.Builder.SetPersonalInfo("fullName", "Unsaved")
	require.Empty(t, e.remote.writeTimes())

	e.identity.emit(domain.AuthEvent{Type: domain.AuthSignedIn, WorkspaceID: ws.ID, Session: jane})

	require.Len(t, e.remote.writeTimes(), 1, "the pending save is written before resolving again")
	assert.Equal(t, docID, ws.Persistence.DocumentID())
	assert.Equal(t, "Unsaved", ws.Builder.Snapshot().PersonalInfo.FullName)

	data, err := e.store.GetData(ctx, docID)
	require.NoError(t, err)
	assert.Equal(t, "Unsaved", data.Document.PersonalInfo.FullName)

	time.Sleep(4 * testIdle)
	assert.Len(t, e.remote.writeTimes(), 1, "nothing left pending afterwards")
}

func TestWorkspace_CloseFlushesAndUnsubscribes(t *testing.T) {
	e := newEnv(t)
	e.identity.set(jane, nil)
	ctx := context.Background()
	ws, _ := e.manager.Open(ctx, "")
	require.Equal(t, 1, e.identity.subscribers())

	ws.Builder.SetPersonalInfo("fullName", "Jane")
	require.NoError(t, e.manager.Close(ctx, ws.ID))

	assert.Len(t, e.remote.writeTimes(), 1)
	assert.Equal(t, 0, e.identity.subscribers())
	assert.Equal(t, 0, e.manager.Len())

	_, err := e.manager.Get(ws.ID)
	assert.Error(t, err)
	assert.Error(t, e.manager.Close(ctx, ws.ID))
}

func TestWorkspace_EvictIdle(t *testing.T) {
	e := newEnv(t)
	e.identity.set(jane, nil)
	ctx := context.Background()

	stale, _ := e.manager.Open(ctx, "")
	stale.Builder.SetPersonalInfo("fullName", "Jane")

	e.clock.Advance(45 * time.Second)
	fresh, _ := e.manager.Open(ctx, "")
	e.clock.Advance(30 * time.Second)

	assert.Equal(t, 1, e.manager.EvictIdle(ctx))
	assert.Len(t, e.remote.writeTimes(), 1, "eviction flushes the pending save")

	_, err := e.manager.Get(stale.ID)
	assert.Error(t, err)
	_, err = e.manager.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestWorkspace_SetCustomization(t *testing.T) {
	e := newEnv(t)
	e.identity.set(jane, nil)
	ctx := context.Background()
	ws, _ := e.manager.Open(ctx, "")

	got := ws.SetCustomization(domain.Customization{Theme: "Elegant Black"})
	assert.Equal(t, domain.DefaultFontSize, got.FontSize)

	ws.Persistence.Save(ctx)
	data, err := e.store.GetData(ctx, ws.Persistence.DocumentID())
	require.NoError(t, err)
	require.NotNil(t, data.Customization)
	assert.Equal(t, "Elegant Black", data.Customization.Theme)
}

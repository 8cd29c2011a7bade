package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/repository/memory"
	"cvcraft-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testIdle = 80 * time.Millisecond

func docWithName(name string) *domain.CVDocument {
	doc := domain.NewCVDocument()
	doc.PersonalInfo.FullName = name
	return doc
}

func TestPersistence_LocalWritesImmediately(t *testing.T) {
	local := memory.NewSnapshotStore()
	p := usecase.NewPersistenceController(usecase.PersistenceConfig{Key: "ws", Local: local, Idle: testIdle})
	p.UseLocal(domain.NewCVDocument())

	p.Schedule(docWithName("Jane"))

	loaded, err := local.Load(context.Background(), "ws")
	require.NoError(t, err)
	assert.Equal(t, "Jane", loaded.PersonalInfo.FullName)

	status := p.Status()
	assert.Equal(t, domain.ModeLocal, status.Mode)
	assert.False(t, status.Pending)
	assert.NotNil(t, status.LastSaved)
}

func TestPersistence_LocalFailureIsSwallowed(t *testing.T) {
	local := new(MockLocalStore)
	local.On("Save", mock.Anything, "ws", mock.Anything).Return(errors.New("disk full"))

	p := usecase.NewPersistenceController(usecase.PersistenceConfig{Key: "ws", Local: local, Idle: testIdle})
	p.Schedule(docWithName("Jane"))

	local.AssertNumberOfCalls(t, "Save", 1)
	assert.Nil(t, p.Status().LastSaved)
}

func newRemoteController(t *testing.T) (*usecase.PersistenceController, *countingRemote, string) {
	t.Helper()
	store := memory.NewRemoteStore()
	header, err := store.Create(context.Background(), "user-1", domain.DefaultDocumentTitle)
	require.NoError(t, err)

	remote := &countingRemote{RemoteStore: store}
	p := usecase.NewPersistenceController(usecase.PersistenceConfig{
		Key:    "ws",
		Local:  memory.NewSnapshotStore(),
		Remote: remote,
		Idle:   testIdle,
	})
	p.UseRemote(header.ID, domain.NewCVDocument())
	return p, remote, header.ID
}

func TestPersistence_RemoteDebounce(t *testing.T) {
	p, remote, _ := newRemoteController(t)

	var last time.Time
	for i := 0; i < 5; i++ {
		last = time.Now()
		p.Schedule(docWithName("edit " + string(rune('a'+i))))
		time.Sleep(testIdle / 4)
	}
	assert.True(t, p.Status().Pending)
	assert.Empty(t, remote.writeTimes(), "nothing written inside the idle window")

	assert.Eventually(t, func() bool { return len(remote.writeTimes()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(2 * testIdle)

	writes := remote.writeTimes()
	require.Len(t, writes, 1, "a burst of edits produces one write")
	assert.GreaterOrEqual(t, writes[0].Sub(last), testIdle)
	assert.Equal(t, "edit e", remote.last().PersonalInfo.FullName)
	assert.NotNil(t, p.Status().LastSaved)
}

func TestPersistence_ManualSave(t *testing.T) {
	p, remote, id := newRemoteController(t)

	p.Schedule(docWithName("Jane"))
	status := p.Save(context.Background())

	assert.Equal(t, domain.ModeRemote, status.Mode)
	assert.Equal(t, id, status.DocumentID)
	assert.False(t, status.Pending)
	require.Len(t, remote.writeTimes(), 1)

	time.Sleep(2 * testIdle)
	assert.Len(t, remote.writeTimes(), 1, "manual save cancels the pending autosave")
}

func TestPersistence_Flush(t *testing.T) {
	p, remote, _ := newRemoteController(t)

	assert.False(t, p.Flush(context.Background()), "nothing pending")

	p.Schedule(docWithName("Jane"))
	assert.True(t, p.Flush(context.Background()))
	require.Len(t, remote.writeTimes(), 1)
	assert.Equal(t, "Jane", remote.last().PersonalInfo.FullName)
}

func TestPersistence_FlushWaitsForRunningAutosave(t *testing.T) {
	started, release := make(chan struct{}), make(chan struct{})
	remote := new(MockRemoteStore)
	remote.On("UpdateData", mock.Anything, "doc-1", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(nil).Once()
	remote.On("Touch", mock.Anything, "doc-1", mock.Anything).Return(nil).Once()

	p := usecase.NewPersistenceController(usecase.PersistenceConfig{Key: "ws", Remote: remote, Idle: testIdle})
	p.UseRemote("doc-1", domain.NewCVDocument())
	p.Schedule(docWithName("Jane"))

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("autosave never started")
	}

	flushed := make(chan bool, 1)
	go func() { flushed <- p.Flush(context.Background()) }()

	select {
	case <-flushed:
		t.Fatal("Flush returned while the autosave was still writing")
	case <-time.After(3 * testIdle / 4):
	}

	close(release)
	select {
	case pending := <-flushed:
		assert.False(t, pending, "the timer had already fired")
	case <-time.After(time.Second):
		t.Fatal("Flush never returned")
	}
	remote.AssertExpectations(t)
	assert.NotNil(t, p.Status().LastSaved)
}

func TestPersistence_HeldUntilDocumentKnown(t *testing.T) {
	remote := &countingRemote{RemoteStore: memory.NewRemoteStore()}
	local := new(MockLocalStore)
	p := usecase.NewPersistenceController(usecase.PersistenceConfig{Key: "ws", Local: local, Remote: remote, Idle: testIdle})

	p.AwaitRemote()
	p.Schedule(docWithName("Jane"))
	p.Save(context.Background())
	time.Sleep(2 * testIdle)

	assert.Empty(t, remote.writeTimes())
	local.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, domain.ModeRemote, p.Mode())
	assert.Empty(t, p.DocumentID())
}

func TestPersistence_RemoteFailureIsSwallowed(t *testing.T) {
	remote := new(MockRemoteStore)
	remote.On("UpdateData", mock.Anything, "doc-1", mock.Anything, mock.Anything).Return(errors.New("network down"))

	p := usecase.NewPersistenceController(usecase.PersistenceConfig{Key: "ws", Remote: remote, Idle: testIdle})
	p.UseRemote("doc-1", domain.NewCVDocument())
	p.Schedule(docWithName("Jane"))

	status := p.Save(context.Background())
	assert.Nil(t, status.LastSaved)
	assert.False(t, status.Saving)
	remote.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersistence_WritesCustomization(t *testing.T) {
	remote := new(MockRemoteStore)
	custom := domain.Customization{Theme: "Modern Teal", FontFamily: "Georgia", FontWeight: "Bold", FontSize: 16}
	remote.On("UpdateData", mock.Anything, "doc-1", mock.Anything, custom).Return(nil).Once()
	remote.On("Touch", mock.Anything, "doc-1", mock.Anything).Return(nil).Once()

	p := usecase.NewPersistenceController(usecase.PersistenceConfig{Key: "ws", Remote: remote, Idle: testIdle})
	p.UseRemote("doc-1", domain.NewCVDocument())
	p.SetCustomization(custom)
	p.Schedule(docWithName("Jane"))
	p.Save(context.Background())

	remote.AssertExpectations(t)
}

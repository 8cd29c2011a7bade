package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSnapshotStore()

	doc := domain.NewCVDocument()
	doc.Skills = []domain.Skill{{ID: 1, Name: "Go", Level: domain.SkillAdvanced}}
	doc.Courses = []domain.Course{{ID: 2, Title: "K8s", Skills: []string{"Helm"}}}

	require.NoError(t, store.Save(ctx, "ws", doc))
	loaded, err := store.Load(ctx, "ws")
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	loaded.Courses[0].Skills[0] = "changed"
	again, _ := store.Load(ctx, "ws")
	assert.Equal(t, "Helm", again.Courses[0].Skills[0])

	store.Put("bad", []byte("]["))
	_, err = store.Load(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)

	require.NoError(t, store.Delete(ctx, "ws"))
	_, err = store.Load(ctx, "ws")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()

	_, err := store.Get(ctx, "ws")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Set(ctx, "ws", &domain.Session{UserID: "u1"}, time.Hour))
	s, err := store.Get(ctx, "ws")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)

	require.NoError(t, store.Set(ctx, "short", &domain.Session{UserID: "u2"}, time.Nanosecond))
	time.Sleep(time.Millisecond)
	_, err = store.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Delete(ctx, "ws"))
	_, err = store.Get(ctx, "ws")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoteStore_CreateIsIdempotentPerOwner(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRemoteStore()

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := store.Create(ctx, "user-1", domain.DefaultDocumentTitle)
			if assert.NoError(t, err) {
				ids[i] = h.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	headers, data := store.Counts()
	assert.Equal(t, 1, headers)
	assert.Equal(t, 1, data)

	latest, err := store.LatestByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, ids[0], latest.ID)

	_, err = store.LatestByOwner(ctx, "user-2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoteStore_UpdateData(t *testing.T) {
	ctx := context.Background()
	store := memory.NewRemoteStore()

	assert.ErrorIs(t, store.UpdateData(ctx, "missing", domain.NewCVDocument(), domain.DefaultCustomization()), domain.ErrNotFound)

	h, err := store.Create(ctx, "user-1", "My CV")
	require.NoError(t, err)

	data, err := store.GetData(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, data.Document.IsEmpty())
	assert.Nil(t, data.Customization)

	doc := domain.NewCVDocument()
	doc.PersonalInfo.FullName = "Jane"
	custom := domain.Customization{Theme: "Modern Teal"}
	require.NoError(t, store.UpdateData(ctx, h.ID, doc, custom))

	data, err = store.GetData(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", data.Document.PersonalInfo.FullName)
	require.NotNil(t, data.Customization)
	assert.Equal(t, "Modern Teal", data.Customization.Theme)
}

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/repository/file"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDocument() *domain.CVDocument {
	doc := domain.NewCVDocument()
	doc.PersonalInfo = domain.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com", Summary: "Engineer"}
	doc.Experience = []domain.ExperienceEntry{{ID: 1, JobTitle: "Dev", Company: "Acme", StartDate: "2020-01", Current: true}}
	doc.Education = []domain.EducationEntry{{ID: 2, Degree: "MSc", School: "ETH", GraduationDate: "2019-06"}}
	doc.Skills = []domain.Skill{{ID: 3, Name: "Go", Level: domain.SkillExpert}}
	doc.Languages = []domain.Language{{ID: 4, Name: "French", Proficiency: domain.ProficiencyNative}}
	doc.Interests = []domain.Interest{{ID: 5, Name: "Hiking", Category: "Outdoor"}}
	doc.Courses = []domain.Course{{ID: 6, Title: "SICP", Provider: "MIT OpenCourseWare", Skills: []string{"Scheme"}}}
	return doc
}

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := file.NewSnapshotStore(dir)
	require.NoError(t, err)
	key := uuid.NewString()

	t.Run("missing snapshot", func(t *testing.T) {
		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("round trip is deep equal", func(t *testing.T) {
		doc := fullDocument()
		require.NoError(t, store.Save(ctx, key, doc))

		loaded, err := store.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, doc, loaded)
	})

	t.Run("reopened store reads the same snapshot", func(t *testing.T) {
		reopened, err := file.NewSnapshotStore(dir)
		require.NoError(t, err)
		loaded, err := reopened.Load(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, fullDocument(), loaded)
	})

	t.Run("corrupt snapshot", func(t *testing.T) {
		bad := uuid.NewString()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cv-data-"+bad+".json"), []byte("{not json"), 0o644))

		_, err := store.Load(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrCorruptSnapshot)
	})

	t.Run("rejects non uuid keys", func(t *testing.T) {
		err := store.Save(ctx, "../../etc/passwd", fullDocument())
		assert.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, key))
		_, err := store.Load(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, store.Delete(ctx, key))
	})
}

package usecase_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/internal/usecase"
	"cvcraft-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuilder() *usecase.Builder {
	clock := time.UnixMilli(1_700_000_000_000)
	return usecase.NewBuilder(usecase.NewIDGenerator(func() time.Time { return clock }), nil, nil)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	return appErr.Code
}

func TestIDGenerator(t *testing.T) {
	now := time.UnixMilli(1000)
	gen := usecase.NewIDGenerator(func() time.Time { return now })

	assert.Equal(t, domain.EntryID(1000), gen.Next())
	assert.Equal(t, domain.EntryID(1001), gen.Next(), "same millisecond is bumped")

	gen.Observe(5000)
	assert.Equal(t, domain.EntryID(5001), gen.Next())

	now = time.UnixMilli(9000)
	assert.Equal(t, domain.EntryID(9000), gen.Next())
}

func TestBuilder_AddUpdateRemove(t *testing.T) {
	for _, section := range domain.ListSections {
		section := section
		t.Run(string(section), func(t *testing.T) {
			b := newBuilder()

			doc, err := b.Add(section, domain.NewEntryInput{Name: "First"})
			require.NoError(t, err)
			doc, err = b.Add(section, domain.NewEntryInput{Name: "Second"})
			require.NoError(t, err)

			ids := entryIDs(doc, section)
			require.Len(t, ids, 2)
			assert.NotEqual(t, ids[0], ids[1])

			doc, err = b.Remove(section, ids[0])
			require.NoError(t, err)
			assert.Equal(t, []domain.EntryID{ids[1]}, entryIDs(doc, section))

			doc, err = b.Remove(section, 424242)
			require.NoError(t, err)
			assert.Len(t, entryIDs(doc, section), 1, "unknown id is a no-op")
		})
	}
}

func entryIDs(doc *domain.CVDocument, section domain.SectionName) []domain.EntryID {
	var ids []domain.EntryID
	switch section {
	case domain.SectionExperience:
		for _, e := range doc.Experience {
			ids = append(ids, e.ID)
		}
	case domain.SectionEducation:
		for _, e := range doc.Education {
			ids = append(ids, e.ID)
		}
	case domain.SectionSkills:
		for _, e := range doc.Skills {
			ids = append(ids, e.ID)
		}
	case domain.SectionLanguages:
		for _, e := range doc.Languages {
			ids = append(ids, e.ID)
		}
	case domain.SectionInterests:
		for _, e := range doc.Interests {
			ids = append(ids, e.ID)
		}
	case domain.SectionCourses:
		for _, e := range doc.Courses {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func TestBuilder_NamedSectionsRejectDuplicates(t *testing.T) {
	for _, section := range []domain.SectionName{domain.SectionSkills, domain.SectionLanguages, domain.SectionInterests} {
		section := section
		t.Run(string(section), func(t *testing.T) {
			b := newBuilder()
			_, err := b.Add(section, domain.NewEntryInput{Name: "Go"})
			require.NoError(t, err)

			doc, err := b.Add(section, domain.NewEntryInput{Name: "  gO "})
			require.NoError(t, err)
			assert.Len(t, entryIDs(doc, section), 1)

			doc, err = b.Add(section, domain.NewEntryInput{Name: "   "})
			require.NoError(t, err)
			assert.Len(t, entryIDs(doc, section), 1, "blank name is ignored")
		})
	}
}

func TestBuilder_Update(t *testing.T) {
	t.Run("changes only the named field", func(t *testing.T) {
		b := newBuilder()
		b.Add(domain.SectionEducation, domain.NewEntryInput{})
		doc, _ := b.Add(domain.SectionEducation, domain.NewEntryInput{})
		first, second := doc.Education[0], doc.Education[1]

		doc, err := b.Update(domain.SectionEducation, second.ID, "school", "ETH Zurich")
		require.NoError(t, err)

		assert.Equal(t, first, doc.Education[0])
		want := second
		want.School = "ETH Zurich"
		assert.Equal(t, want, doc.Education[1])
	})

	t.Run("current keeps the end date across toggles", func(t *testing.T) {
		b := newBuilder()
		doc, _ := b.Add(domain.SectionExperience, domain.NewEntryInput{})
		id := doc.Experience[0].ID

		b.Update(domain.SectionExperience, id, "endDate", "2024-05")
		before := b.Snapshot().Experience[0]

		doc, err := b.Update(domain.SectionExperience, id, "current", true)
		require.NoError(t, err)
		want := before
		want.Current = true
		assert.Equal(t, want, doc.Experience[0], "only current changes")

		doc, _ = b.Update(domain.SectionExperience, id, "endDate", "2025-01")
		assert.Equal(t, "2024-05", doc.Experience[0].EndDate, "end date is read-only while current")

		doc, err = b.Update(domain.SectionExperience, id, "current", false)
		require.NoError(t, err)
		assert.Equal(t, before, doc.Experience[0])
	})

	t.Run("invalid value leaves the document unchanged", func(t *testing.T) {
		b := newBuilder()
		doc, _ := b.Add(domain.SectionSkills, domain.NewEntryInput{Name: "Go"})
		before := b.Snapshot()
		id := doc.Skills[0].ID

		_, err := b.Update(domain.SectionSkills, id, "level", "guru")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, before, b.Snapshot())

		_, err = b.Update(domain.SectionSkills, id, "colour", "red")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

		_, err = b.Update(domain.SectionExperience, id, "current", "yes")
		assert.NoError(t, err, "unknown id in another section is a no-op")

		_, err = b.Update(domain.SectionCourses, id, "completionDate", "May 2020")
		assert.NoError(t, err)
	})

	t.Run("bad month is stored and flagged", func(t *testing.T) {
		b := newBuilder()
		doc, _ := b.Add(domain.SectionCourses, domain.NewEntryInput{})
		id := doc.Courses[0].ID

		doc, err := b.Update(domain.SectionCourses, id, "completionDate", "May 2020")
		require.NoError(t, err)
		assert.Equal(t, "May 2020", doc.Courses[0].CompletionDate)
		assert.Equal(t, []domain.FieldWarning{{
			Section: domain.SectionCourses,
			EntryID: id,
			Field:   "completionDate",
			Message: "Completion date: expected a YYYY-MM date",
		}}, b.Warnings())

		b.Update(domain.SectionCourses, id, "completionDate", "2020-05")
		assert.Empty(t, b.Warnings())
	})

	t.Run("length caps still reject", func(t *testing.T) {
		b := newBuilder()
		doc, _ := b.Add(domain.SectionExperience, domain.NewEntryInput{})
		before := b.Snapshot()

		_, err := b.Update(domain.SectionExperience, doc.Experience[0].ID, "startDate", strings.Repeat("9", 21))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, before, b.Snapshot())
	})

	t.Run("rename to an existing name is ignored", func(t *testing.T) {
		b := newBuilder()
		b.Add(domain.SectionLanguages, domain.NewEntryInput{Name: "French"})
		doc, _ := b.Add(domain.SectionLanguages, domain.NewEntryInput{Name: "German"})

		doc, err := b.Update(domain.SectionLanguages, doc.Languages[1].ID, "name", "french")
		require.NoError(t, err)
		assert.Equal(t, "German", doc.Languages[1].Name)
	})

	t.Run("interest rename recomputes the category", func(t *testing.T) {
		b := newBuilder()
		doc, _ := b.Add(domain.SectionInterests, domain.NewEntryInput{Name: "Knitting"})
		assert.Equal(t, domain.OtherInterestCategory, doc.Interests[0].Category)

		doc, err := b.Update(domain.SectionInterests, doc.Interests[0].ID, "name", "hiking")
		require.NoError(t, err)
		assert.Equal(t, "Outdoor", doc.Interests[0].Category)
	})

	t.Run("markup is stripped", func(t *testing.T) {
		b := newBuilder()
		doc, err := b.SetPersonalInfo("fullName", "<script>alert(1)</script>Jane")
		require.NoError(t, err)
		assert.Equal(t, "Jane", doc.PersonalInfo.FullName)
	})

	t.Run("unknown section", func(t *testing.T) {
		b := newBuilder()
		_, err := b.Add("hobbies", domain.NewEntryInput{})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestBuilder_PersonalInfo(t *testing.T) {
	b := newBuilder()

	doc, err := b.SetPersonalInfo("email", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", doc.PersonalInfo.Email)
	assert.Empty(t, b.Warnings())

	// values mid-typing are stored as they are
	for field, value := range map[string]string{"email": "jane@", "phone": "+33"} {
		doc, err = b.SetPersonalInfo(field, value)
		require.NoError(t, err, field)
	}
	assert.Equal(t, "jane@", doc.PersonalInfo.Email)
	assert.Equal(t, "+33", doc.PersonalInfo.Phone)

	warnings := b.Warnings()
	require.Len(t, warnings, 2)
	fields := []string{warnings[0].Field, warnings[1].Field}
	assert.ElementsMatch(t, []string{"email", "phone"}, fields)
	for _, w := range warnings {
		assert.Equal(t, domain.SectionPersonalInfo, w.Section)
		assert.Zero(t, w.EntryID)
	}

	_, err = b.SetPersonalInfo("age", "42")
	assert.Error(t, err)
	_, err = b.SetPersonalInfo("email", 42)
	assert.Error(t, err, "wrong value type")
}

func TestBuilder_CourseSkills(t *testing.T) {
	b := newBuilder()
	doc, _ := b.Add(domain.SectionCourses, domain.NewEntryInput{})
	id := doc.Courses[0].ID

	b.AddCourseSkill(id, " Docker ")
	doc, _ = b.AddCourseSkill(id, "Kubernetes")
	assert.Equal(t, []string{"Docker", "Kubernetes"}, doc.Courses[0].Skills)

	doc, _ = b.AddCourseSkill(id, "   ")
	assert.Len(t, doc.Courses[0].Skills, 2)

	doc, _ = b.RemoveCourseSkill(id, 0)
	assert.Equal(t, []string{"Kubernetes"}, doc.Courses[0].Skills)

	doc, _ = b.RemoveCourseSkill(id, 7)
	assert.Equal(t, []string{"Kubernetes"}, doc.Courses[0].Skills)
}

func TestBuilder_SuggestSkills(t *testing.T) {
	b := newBuilder()
	b.Add(domain.SectionSkills, domain.NewEntryInput{Name: "python", Level: "expert"})

	doc, err := b.SuggestSkills()
	require.NoError(t, err)
	require.Len(t, doc.Skills, 1+domain.MaxSkillSuggestions)
	assert.Equal(t, domain.SkillExpert, doc.Skills[0].Level)
	for _, s := range doc.Skills[1:] {
		assert.Equal(t, domain.SkillIntermediate, s.Level)
		assert.NotEqual(t, "Python", s.Name)
	}
}

func TestBuilder_OnChange(t *testing.T) {
	b := newBuilder()
	var seen []*domain.CVDocument
	b.OnChange(func(doc *domain.CVDocument) { seen = append(seen, doc) })

	b.Add(domain.SectionSkills, domain.NewEntryInput{Name: "Go"})
	b.Add(domain.SectionSkills, domain.NewEntryInput{Name: "go"})
	b.Update(domain.SectionSkills, 1, "name", "x")
	b.Replace(domain.NewCVDocument())

	require.Len(t, seen, 1, "no-ops and replace do not notify")
	assert.Equal(t, "Go", seen[0].Skills[0].Name)

	seen[0].Skills[0].Name = "mutated"
	assert.Empty(t, b.Snapshot().Skills, "listener receives a copy")
}

func TestBuilder_ReplaceKeepsIDsUnique(t *testing.T) {
	b := newBuilder()
	doc := domain.NewCVDocument()
	doc.Skills = []domain.Skill{{ID: 1_800_000_000_000, Name: "Go", Level: domain.SkillAdvanced}}
	b.Replace(doc)

	out, err := b.Add(domain.SectionSkills, domain.NewEntryInput{Name: "Rust"})
	require.NoError(t, err)
	assert.Greater(t, out.Skills[1].ID, out.Skills[0].ID)
}

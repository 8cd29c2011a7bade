package usecase

import (
	"strings"
	"sync"
	"time"

	"cvcraft-backend/internal/domain"
)

// IDGenerator hands out millisecond timestamps, bumped so that every id is
// strictly greater than the previous one.
type IDGenerator struct {
	mu   sync.Mutex
	last domain.EntryID
	now  func() time.Time
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

func (g *IDGenerator) Next() domain.EntryID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := domain.EntryID(g.now().UnixMilli())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe keeps future ids above an existing one.
func (g *IDGenerator) Observe(id domain.EntryID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}

// Entry is the constraint every list entry satisfies through its pointer.
type Entry[T any] interface {
	*T
	EntryID() domain.EntryID
	SetField(field string, value any) error
}

// listOps is the type-erased view the builder dispatches on.
type listOps interface {
	add(doc *domain.CVDocument, id domain.EntryID, input domain.NewEntryInput) bool
	update(doc *domain.CVDocument, id domain.EntryID, field string, value any) (bool, error)
	remove(doc *domain.CVDocument, id domain.EntryID) bool
	validate(doc *domain.CVDocument, id domain.EntryID, check func(any) error) error
}

// Section is the CRUD manager for one collection of a document.
type Section[T any, P Entry[T]] struct {
	name domain.SectionName
	list func(doc *domain.CVDocument) *[]T
	// create builds a new entry; returning false rejects the add.
	create func(id domain.EntryID, input domain.NewEntryInput) (T, bool)
	// key returns the uniqueness key, nil for unconstrained sections.
	key func(entry *T) string
}

func (s *Section[T, P]) Name() domain.SectionName { return s.name }

func (s *Section[T, P]) find(items []T, id domain.EntryID) int {
	for i := range items {
		if P(&items[i]).EntryID() == id {
			return i
		}
	}
	return -1
}

func (s *Section[T, P]) taken(items []T, key string, skip int) bool {
	if s.key == nil {
		return false
	}
	for i := range items {
		if i != skip && s.key(&items[i]) == key {
			return true
		}
	}
	return false
}

func (s *Section[T, P]) add(doc *domain.CVDocument, id domain.EntryID, input domain.NewEntryInput) bool {
	entry, ok := s.create(id, input)
	if !ok {
		return false
	}
	items := s.list(doc)
	if s.key != nil {
		key := s.key(&entry)
		if key == "" || s.taken(*items, key, -1) {
			return false
		}
	}
	*items = append(*items, entry)
	return true
}

func (s *Section[T, P]) update(doc *domain.CVDocument, id domain.EntryID, field string, value any) (bool, error) {
	items := s.list(doc)
	i := s.find(*items, id)
	if i < 0 {
		return false, nil
	}

	updated := (*items)[i]
	if err := P(&updated).SetField(field, value); err != nil {
		return false, err
	}
	if s.key != nil {
		key := s.key(&updated)
		if key == "" || s.taken(*items, key, i) {
			return false, nil
		}
	}
	(*items)[i] = updated
	return true, nil
}

func (s *Section[T, P]) remove(doc *domain.CVDocument, id domain.EntryID) bool {
	items := s.list(doc)
	i := s.find(*items, id)
	if i < 0 {
		return false
	}
	*items = append((*items)[:i], (*items)[i+1:]...)
	return true
}

func (s *Section[T, P]) validate(doc *domain.CVDocument, id domain.EntryID, check func(any) error) error {
	items := *s.list(doc)
	i := s.find(items, id)
	if i < 0 {
		return nil
	}
	return check(&items[i])
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func skillLevel(level string) domain.SkillLevel {
	if level == "" {
		return domain.SkillIntermediate
	}
	return domain.SkillLevel(strings.ToLower(strings.TrimSpace(level)))
}

func proficiency(level string) domain.Proficiency {
	if level == "" {
		return domain.ProficiencyIntermediate
	}
	return domain.Proficiency(strings.ToLower(strings.TrimSpace(level)))
}

var (
	experienceSection = &Section[domain.ExperienceEntry, *domain.ExperienceEntry]{
		name: domain.SectionExperience,
		list: func(doc *domain.CVDocument) *[]domain.ExperienceEntry { return &doc.Experience },
		create: func(id domain.EntryID, _ domain.NewEntryInput) (domain.ExperienceEntry, bool) {
			return domain.ExperienceEntry{ID: id}, true
		},
	}

	educationSection = &Section[domain.EducationEntry, *domain.EducationEntry]{
		name: domain.SectionEducation,
		list: func(doc *domain.CVDocument) *[]domain.EducationEntry { return &doc.Education },
		create: func(id domain.EntryID, _ domain.NewEntryInput) (domain.EducationEntry, bool) {
			return domain.EducationEntry{ID: id}, true
		},
	}

	skillSection = &Section[domain.Skill, *domain.Skill]{
		name: domain.SectionSkills,
		list: func(doc *domain.CVDocument) *[]domain.Skill { return &doc.Skills },
		create: func(id domain.EntryID, in domain.NewEntryInput) (domain.Skill, bool) {
			return domain.Skill{ID: id, Name: strings.TrimSpace(in.Name), Level: skillLevel(in.Level)}, true
		},
		key: func(s *domain.Skill) string { return nameKey(s.Name) },
	}

	languageSection = &Section[domain.Language, *domain.Language]{
		name: domain.SectionLanguages,
		list: func(doc *domain.CVDocument) *[]domain.Language { return &doc.Languages },
		create: func(id domain.EntryID, in domain.NewEntryInput) (domain.Language, bool) {
			return domain.Language{ID: id, Name: strings.TrimSpace(in.Name), Proficiency: proficiency(in.Level)}, true
		},
		key: func(l *domain.Language) string { return nameKey(l.Name) },
	}

	interestSection = &Section[domain.Interest, *domain.Interest]{
		name: domain.SectionInterests,
		list: func(doc *domain.CVDocument) *[]domain.Interest { return &doc.Interests },
		create: func(id domain.EntryID, in domain.NewEntryInput) (domain.Interest, bool) {
			name := strings.TrimSpace(in.Name)
			return domain.Interest{ID: id, Name: name, Category: domain.InterestCategoryFor(name)}, true
		},
		key: func(i *domain.Interest) string { return nameKey(i.Name) },
	}

	courseSection = &Section[domain.Course, *domain.Course]{
		name: domain.SectionCourses,
		list: func(doc *domain.CVDocument) *[]domain.Course { return &doc.Courses },
		create: func(id domain.EntryID, _ domain.NewEntryInput) (domain.Course, bool) {
			return domain.Course{ID: id, Skills: []string{}}, true
		},
	}
)

var sections = map[domain.SectionName]listOps{
	domain.SectionExperience: experienceSection,
	domain.SectionEducation:  educationSection,
	domain.SectionSkills:     skillSection,
	domain.SectionLanguages:  languageSection,
	domain.SectionInterests:  interestSection,
	domain.SectionCourses:    courseSection,
}

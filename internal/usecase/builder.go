package usecase

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"cvcraft-backend/internal/domain"
	"cvcraft-backend/pkg/apperror"
	"cvcraft-backend/pkg/sanitize"
	"cvcraft-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Builder owns the active document of a workspace. Every mutation goes
// through apply, which works on a copy and commits only when the edit
// changed something and the result is structurally valid. Free-text
// formats (email, phone, dates, URLs) are stored as typed and reported
// by Warnings.
type Builder struct {
	mu        sync.Mutex
	doc       *domain.CVDocument
	ids       *IDGenerator
	validate  *validator.Validate
	formats   *validator.Validate
	sanitizer *sanitize.Sanitizer
	onChange  func(doc *domain.CVDocument)
}

func NewBuilder(ids *IDGenerator, validate *validator.Validate, sanitizer *sanitize.Sanitizer) *Builder {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	if validate == nil {
		validate = validation.New()
	}
	if sanitizer == nil {
		sanitizer = sanitize.New()
	}
	return &Builder{
		doc:       domain.NewCVDocument(),
		ids:       ids,
		validate:  validate,
		formats:   validation.NewFormat(),
		sanitizer: sanitizer,
	}
}

// OnChange registers the listener called with a snapshot after each
// committed edit. It runs while the builder is locked, so edits are
// observed in order.
func (b *Builder) OnChange(fn func(doc *domain.CVDocument)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = fn
}

// Snapshot returns a deep copy of the current document.
func (b *Builder) Snapshot() *domain.CVDocument {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.doc.Clone()
}

// Replace loads a document without notifying the listener.
func (b *Builder) Replace(doc *domain.CVDocument) {
	if doc == nil {
		doc = domain.NewCVDocument()
	}
	doc = doc.Clone()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.doc = doc
	b.ids.Observe(doc.MaxEntryID())
}

func (b *Builder) apply(edit func(doc *domain.CVDocument) (bool, error)) (*domain.CVDocument, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	work := b.doc.Clone()
	changed, err := edit(work)
	if err != nil {
		return nil, err
	}
	if !changed {
		return b.doc.Clone(), nil
	}

	b.doc = work
	out := work.Clone()
	if b.onChange != nil {
		b.onChange(work.Clone())
	}
	return out, nil
}

func (b *Builder) check(v any) error {
	if err := b.validate.Struct(v); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}
	return nil
}

func fieldError(err error) error {
	return apperror.New(http.StatusBadRequest, err.Error(), err)
}

func (b *Builder) SetPersonalInfo(field string, value any) (*domain.CVDocument, error) {
	value = b.sanitizer.Value(value)
	return b.apply(func(doc *domain.CVDocument) (bool, error) {
		info := doc.PersonalInfo
		if err := info.SetField(field, value); err != nil {
			return false, fieldError(err)
		}
		if err := b.check(&info); err != nil {
			return false, err
		}
		if info == doc.PersonalInfo {
			return false, nil
		}
		doc.PersonalInfo = info
		return true, nil
	})
}

func sectionOps(section domain.SectionName) (listOps, error) {
	ops, ok := sections[section]
	if !ok {
		return nil, apperror.NotFound(fmt.Sprintf("Unknown section %q", section))
	}
	return ops, nil
}

// Add appends a fresh entry. For named sections an empty or duplicate
// name leaves the document untouched.
func (b *Builder) Add(section domain.SectionName, input domain.NewEntryInput) (*domain.CVDocument, error) {
	ops, err := sectionOps(section)
	if err != nil {
		return nil, err
	}
	input.Name = b.sanitizer.Text(input.Name)
	return b.apply(func(doc *domain.CVDocument) (bool, error) {
		id := b.ids.Next()
		if !ops.add(doc, id, input) {
			return false, nil
		}
		if err := ops.validate(doc, id, b.check); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Update replaces one field of one entry. Unknown ids are ignored.
func (b *Builder) Update(section domain.SectionName, id domain.EntryID, field string, value any) (*domain.CVDocument, error) {
	ops, err := sectionOps(section)
	if err != nil {
		return nil, err
	}
	value = b.sanitizer.Value(value)
	return b.apply(func(doc *domain.CVDocument) (bool, error) {
		changed, err := ops.update(doc, id, field, value)
		if err != nil {
			return false, fieldError(err)
		}
		if !changed {
			return false, nil
		}
		if err := ops.validate(doc, id, b.check); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Remove deletes an entry by id. Unknown ids are ignored.
func (b *Builder) Remove(section domain.SectionName, id domain.EntryID) (*domain.CVDocument, error) {
	ops, err := sectionOps(section)
	if err != nil {
		return nil, err
	}
	return b.apply(func(doc *domain.CVDocument) (bool, error) {
		return ops.remove(doc, id), nil
	})
}

func (b *Builder) AddCourseSkill(courseID domain.EntryID, skill string) (*domain.CVDocument, error) {
	skill = b.sanitizer.Text(skill)
	return b.apply(func(doc *domain.CVDocument) (bool, error) {
		for i := range doc.Courses {
			if doc.Courses[i].ID != courseID {
				continue
			}
			if !doc.Courses[i].AddSkill(skill) {
				return false, nil
			}
			return true, b.check(&doc.Courses[i])
		}
		return false, nil
	})
}

func (b *Builder) RemoveCourseSkill(courseID domain.EntryID, index int) (*domain.CVDocument, error) {
	return b.apply(func(doc *domain.CVDocument) (bool, error) {
		for i := range doc.Courses {
			if doc.Courses[i].ID == courseID {
				return doc.Courses[i].RemoveSkill(index), nil
			}
		}
		return false, nil
	})
}

// SuggestSkills adds up to six common skills the document lacks, at
// intermediate level.
func (b *Builder) SuggestSkills() (*domain.CVDocument, error) {
	return b.apply(func(doc *domain.CVDocument) (bool, error) {
		added := 0
		for _, name := range domain.CommonSkills {
			if added == domain.MaxSkillSuggestions {
				break
			}
			if skillSection.add(doc, b.ids.Next(), domain.NewEntryInput{Name: name, Level: string(domain.SkillIntermediate)}) {
				added++
			}
		}
		return added > 0, nil
	})
}

// SetSummary replaces the professional summary.
func (b *Builder) SetSummary(text string) (*domain.CVDocument, error) {
	return b.SetPersonalInfo("summary", strings.TrimSpace(text))
}

// Warnings lists stored values that break a format rule.
func (b *Builder) Warnings() []domain.FieldWarning {
	doc := b.Snapshot()

	out := b.warn(nil, domain.SectionPersonalInfo, 0, &doc.PersonalInfo)
	for i := range doc.Experience {
		out = b.warn(out, domain.SectionExperience, doc.Experience[i].ID, &doc.Experience[i])
	}
	for i := range doc.Education {
		out = b.warn(out, domain.SectionEducation, doc.Education[i].ID, &doc.Education[i])
	}
	for i := range doc.Courses {
		out = b.warn(out, domain.SectionCourses, doc.Courses[i].ID, &doc.Courses[i])
	}
	return out
}

func (b *Builder) warn(out []domain.FieldWarning, section domain.SectionName, id domain.EntryID, entry any) []domain.FieldWarning {
	for _, issue := range validation.Issues(b.formats.Struct(entry)) {
		out = append(out, domain.FieldWarning{
			Section: section,
			EntryID: id,
			Field:   issue.Field,
			Message: issue.Message,
		})
	}
	return out
}

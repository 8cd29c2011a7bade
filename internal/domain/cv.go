package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidField    = errors.New("unknown field")
	ErrInvalidValue    = errors.New("invalid value")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

// EntryID is a client-style identifier: the creation time in milliseconds,
// bumped to stay unique within a document.
type EntryID int64

type SectionName string

const (
	SectionPersonalInfo SectionName = "personal-info"
	SectionExperience   SectionName = "experience"
	SectionEducation    SectionName = "education"
	SectionSkills       SectionName = "skills"
	SectionLanguages    SectionName = "languages"
	SectionInterests    SectionName = "interests"
	SectionCourses      SectionName = "courses"
)

// ListSections are the sections that hold entry collections.
var ListSections = []SectionName{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionLanguages,
	SectionInterests,
	SectionCourses,
}

func (s SectionName) IsList() bool {
	for _, name := range ListSections {
		if name == s {
			return true
		}
	}
	return false
}

// CVDocument is the aggregate that is persisted and rendered.
// JSON keys match the local snapshot format.
type CVDocument struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []Skill           `json:"skills"`
	Languages    []Language        `json:"languages"`
	Interests    []Interest        `json:"interests"`
	Courses      []Course          `json:"courses"`
}

func NewCVDocument() *CVDocument {
	doc := &CVDocument{}
	doc.Normalize()
	return doc
}

// Normalize replaces nil collections with empty ones so the JSON form
// always carries arrays.
func (d *CVDocument) Normalize() {
	if d.Experience == nil {
		d.Experience = []ExperienceEntry{}
	}
	if d.Education == nil {
		d.Education = []EducationEntry{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	if d.Interests == nil {
		d.Interests = []Interest{}
	}
	if d.Courses == nil {
		d.Courses = []Course{}
	}
	for i := range d.Courses {
		if d.Courses[i].Skills == nil {
			d.Courses[i].Skills = []string{}
		}
	}
}

// Clone returns a deep copy.
func (d *CVDocument) Clone() *CVDocument {
	if d == nil {
		return nil
	}
	out := &CVDocument{
		PersonalInfo: d.PersonalInfo,
		Experience:   append([]ExperienceEntry(nil), d.Experience...),
		Education:    append([]EducationEntry(nil), d.Education...),
		Skills:       append([]Skill(nil), d.Skills...),
		Languages:    append([]Language(nil), d.Languages...),
		Interests:    append([]Interest(nil), d.Interests...),
		Courses:      make([]Course, len(d.Courses)),
	}
	for i, c := range d.Courses {
		c.Skills = append([]string(nil), c.Skills...)
		out.Courses[i] = c
	}
	out.Normalize()
	return out
}

// IsEmpty reports whether nothing has been entered yet.
func (d *CVDocument) IsEmpty() bool {
	return d.PersonalInfo == (PersonalInfo{}) &&
		len(d.Experience) == 0 && len(d.Education) == 0 &&
		len(d.Skills) == 0 && len(d.Languages) == 0 &&
		len(d.Interests) == 0 && len(d.Courses) == 0
}

// MaxEntryID returns the largest entry id across all sections.
func (d *CVDocument) MaxEntryID() EntryID {
	var max EntryID
	bump := func(id EntryID) {
		if id > max {
			max = id
		}
	}
	for _, e := range d.Experience {
		bump(e.ID)
	}
	for _, e := range d.Education {
		bump(e.ID)
	}
	for _, e := range d.Skills {
		bump(e.ID)
	}
	for _, e := range d.Languages {
		bump(e.ID)
	}
	for _, e := range d.Interests {
		bump(e.ID)
	}
	for _, e := range d.Courses {
		bump(e.ID)
	}
	return max
}

// EncodeSnapshot serializes a document in the local snapshot format.
func EncodeSnapshot(doc *CVDocument) ([]byte, error) {
	if doc == nil {
		doc = NewCVDocument()
	}
	return json.Marshal(doc)
}

// DecodeSnapshot parses a local snapshot. Malformed input yields ErrCorruptSnapshot.
func DecodeSnapshot(data []byte) (*CVDocument, error) {
	var doc CVDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrCorruptSnapshot, err)
	}
	doc.Normalize()
	return &doc, nil
}

// LocalStore is the per-workspace durable key/value slot holding one
// serialized document. Load returns ErrNotFound when the slot is empty.
type LocalStore interface {
	Load(ctx context.Context, key string) (*CVDocument, error)
	Save(ctx context.Context, key string, doc *CVDocument) error
	Delete(ctx context.Context, key string) error
}

// DocumentHeader is the remote record that identifies a user's CV.
type DocumentHeader struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentData is the remote record holding the section contents.
type DocumentData struct {
	DocumentID    string         `json:"cv_id"`
	Document      *CVDocument    `json:"document"`
	Customization *Customization `json:"customization,omitempty"`
}

const DefaultDocumentTitle = "My CV"

// RemoteStore is the contract with the remote backend.
type RemoteStore interface {
	// LatestByOwner returns the most recently modified header of a user.
	LatestByOwner(ctx context.Context, userID string) (*DocumentHeader, error)
	GetData(ctx context.Context, documentID string) (*DocumentData, error)
	// Create inserts a header and an empty data record atomically. When the
	// user already owns a header it is returned instead.
	Create(ctx context.Context, userID, title string) (*DocumentHeader, error)
	CreateData(ctx context.Context, documentID string) error
	UpdateData(ctx context.Context, documentID string, doc *CVDocument, custom Customization) error
	Touch(ctx context.Context, documentID string, at time.Time) error
}

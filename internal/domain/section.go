package domain

import (
	"fmt"
	"strings"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

var SkillLevels = []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert}

type Proficiency string

const (
	ProficiencyNative       Proficiency = "native"
	ProficiencyFluent       Proficiency = "fluent"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyBeginner     Proficiency = "beginner"
)

var Proficiencies = []Proficiency{ProficiencyNative, ProficiencyFluent, ProficiencyAdvanced, ProficiencyIntermediate, ProficiencyBeginner}

// Entry structs carry two tag sets. validate holds the structural rules
// an update must pass (lengths, enum levels). format holds the rules for
// free text the user may still be typing; breaking them only yields a
// FieldWarning.
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"max=120"`
	Email    string `json:"email" validate:"max=254" format:"omitempty,email"`
	Phone    string `json:"phone" validate:"max=40" format:"omitempty,cv_phone"`
	Location string `json:"location" validate:"max=120"`
	Website  string `json:"website" validate:"max=255"`
	LinkedIn string `json:"linkedin" validate:"max=255"`
	Summary  string `json:"summary" validate:"max=2000"`
}

func (p *PersonalInfo) SetField(field string, value any) error {
	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "fullName":
		p.FullName = s
	case "email":
		p.Email = strings.TrimSpace(s)
	case "phone":
		p.Phone = strings.TrimSpace(s)
	case "location":
		p.Location = s
	case "website":
		p.Website = strings.TrimSpace(s)
	case "linkedin":
		p.LinkedIn = strings.TrimSpace(s)
	case "summary":
		p.Summary = s
	default:
		return fmt.Errorf("%w: personal info has no field %q", ErrInvalidField, field)
	}
	return nil
}

type ExperienceEntry struct {
	ID          EntryID `json:"id"`
	JobTitle    string  `json:"jobTitle" validate:"max=120"`
	Company     string  `json:"company" validate:"max=120"`
	Location    string  `json:"location" validate:"max=120"`
	StartDate   string  `json:"startDate" validate:"max=20" format:"cv_month"`
	EndDate     string  `json:"endDate" validate:"max=20" format:"cv_month"`
	Current     bool    `json:"current"`
	Description string  `json:"description" validate:"max=4000"`
}

func (e *ExperienceEntry) EntryID() EntryID { return e.ID }

func (e *ExperienceEntry) SetField(field string, value any) error {
	if field == "current" {
		b, err := boolValue(field, value)
		if err != nil {
			return err
		}
		// EndDate is kept so switching current off restores it.
		e.Current = b
		return nil
	}
	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "jobTitle":
		e.JobTitle = s
	case "company":
		e.Company = s
	case "location":
		e.Location = s
	case "startDate":
		e.StartDate = strings.TrimSpace(s)
	case "endDate":
		// The end date is read-only while the position is current.
		if !e.Current {
			e.EndDate = strings.TrimSpace(s)
		}
	case "description":
		e.Description = s
	default:
		return fmt.Errorf("%w: experience has no field %q", ErrInvalidField, field)
	}
	return nil
}

type EducationEntry struct {
	ID             EntryID `json:"id"`
	Degree         string  `json:"degree" validate:"max=120"`
	Field          string  `json:"field" validate:"max=120"`
	School         string  `json:"school" validate:"max=160"`
	Location       string  `json:"location" validate:"max=120"`
	GraduationDate string  `json:"graduationDate" validate:"max=20" format:"cv_month"`
	GPA            string  `json:"gpa" validate:"max=20"`
}

func (e *EducationEntry) EntryID() EntryID { return e.ID }

func (e *EducationEntry) SetField(field string, value any) error {
	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "degree":
		e.Degree = s
	case "field":
		e.Field = s
	case "school":
		e.School = s
	case "location":
		e.Location = s
	case "graduationDate":
		e.GraduationDate = strings.TrimSpace(s)
	case "gpa":
		e.GPA = strings.TrimSpace(s)
	default:
		return fmt.Errorf("%w: education has no field %q", ErrInvalidField, field)
	}
	return nil
}

type Skill struct {
	ID    EntryID    `json:"id"`
	Name  string     `json:"name" validate:"required,max=80"`
	Level SkillLevel `json:"level" validate:"oneof=beginner intermediate advanced expert"`
}

func (s *Skill) EntryID() EntryID { return s.ID }
func (s *Skill) EntryName() string { return s.Name }

func (s *Skill) SetField(field string, value any) error {
	v, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		s.Name = strings.TrimSpace(v)
	case "level":
		s.Level = SkillLevel(strings.ToLower(strings.TrimSpace(v)))
	default:
		return fmt.Errorf("%w: skill has no field %q", ErrInvalidField, field)
	}
	return nil
}

type Language struct {
	ID          EntryID     `json:"id"`
	Name        string      `json:"name" validate:"required,max=80"`
	Proficiency Proficiency `json:"proficiency" validate:"oneof=native fluent advanced intermediate beginner"`
}

func (l *Language) EntryID() EntryID { return l.ID }
func (l *Language) EntryName() string { return l.Name }

func (l *Language) SetField(field string, value any) error {
	v, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		l.Name = strings.TrimSpace(v)
	case "proficiency":
		l.Proficiency = Proficiency(strings.ToLower(strings.TrimSpace(v)))
	default:
		return fmt.Errorf("%w: language has no field %q", ErrInvalidField, field)
	}
	return nil
}

type Interest struct {
	ID       EntryID `json:"id"`
	Name     string  `json:"name" validate:"required,max=80"`
	Category string  `json:"category" validate:"max=80"`
}

func (i *Interest) EntryID() EntryID { return i.ID }
func (i *Interest) EntryName() string { return i.Name }

// SetField accepts only the name; the category follows from it.
func (i *Interest) SetField(field string, value any) error {
	v, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "name":
		i.Name = strings.TrimSpace(v)
		i.Category = InterestCategoryFor(i.Name)
	default:
		return fmt.Errorf("%w: interest has no field %q", ErrInvalidField, field)
	}
	return nil
}

type Course struct {
	ID             EntryID  `json:"id"`
	Title          string   `json:"title" validate:"max=160"`
	Provider       string   `json:"provider" validate:"max=120"`
	CompletionDate string   `json:"completionDate" validate:"max=20" format:"cv_month"`
	CertificateURL string   `json:"certificateUrl" validate:"max=500" format:"omitempty,url"`
	Skills         []string `json:"skills" validate:"max=30,dive,required,max=60"`
}

func (c *Course) EntryID() EntryID { return c.ID }

func (c *Course) SetField(field string, value any) error {
	if field == "skills" {
		tags, err := stringsValue(field, value)
		if err != nil {
			return err
		}
		c.Skills = tags
		return nil
	}
	s, err := stringValue(field, value)
	if err != nil {
		return err
	}
	switch field {
	case "title":
		c.Title = s
	case "provider":
		c.Provider = s
	case "completionDate":
		c.CompletionDate = strings.TrimSpace(s)
	case "certificateUrl":
		c.CertificateURL = strings.TrimSpace(s)
	default:
		return fmt.Errorf("%w: course has no field %q", ErrInvalidField, field)
	}
	return nil
}

// AddSkill appends a trimmed, non-empty tag. It reports whether the course changed.
func (c *Course) AddSkill(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	c.Skills = append(c.Skills, tag)
	return true
}

// RemoveSkill deletes the tag at index. Out of range is a no-op.
func (c *Course) RemoveSkill(index int) bool {
	if index < 0 || index >= len(c.Skills) {
		return false
	}
	c.Skills = append(c.Skills[:index], c.Skills[index+1:]...)
	return true
}

// FieldWarning flags a stored value that does not look right yet, such as
// a half-typed email address. It never blocks an update.
type FieldWarning struct {
	Section SectionName `json:"section"`
	EntryID EntryID     `json:"id,omitempty"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
}

// NewEntryInput carries the optional values accepted when adding an entry.
type NewEntryInput struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

func stringValue(field string, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("%w: %s expects a string", ErrInvalidValue, field)
	}
}

func boolValue(field string, value any) (bool, error) {
	v, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s expects a boolean", ErrInvalidValue, field)
	}
	return v, nil
}

func stringsValue(field string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string{}, v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s expects a list of strings", ErrInvalidValue, field)
			}
			out = append(out, strings.TrimSpace(s))
		}
		return out, nil
	case nil:
		return []string{}, nil
	default:
		return nil, fmt.Errorf("%w: %s expects a list of strings", ErrInvalidValue, field)
	}
}

package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Personal info
	"FullName": "Full name",
	"Email":    "Email",
	"Phone":    "Phone",
	"Location": "Location",
	"Website":  "Website",
	"LinkedIn": "LinkedIn",
	"Summary":  "Professional summary",

	// Experience
	"JobTitle":    "Job title",
	"Company":     "Company",
	"StartDate":   "Start date",
	"EndDate":     "End date",
	"Description": "Description",

	// Education
	"Degree":         "Degree",
	"Field":          "Field of study",
	"School":         "School",
	"GraduationDate": "Graduation date",
	"GPA":            "GPA",

	// Named entries
	"Name":        "Name",
	"Level":       "Level",
	"Proficiency": "Proficiency",
	"Category":    "Category",

	// Courses
	"Title":          "Course title",
	"Provider":       "Provider",
	"CompletionDate": "Completion date",
	"CertificateURL": "Certificate URL",
	"Skills":         "Skills",

	// Preview
	"Theme":      "Theme",
	"FontFamily": "Font family",
	"FontWeight": "Font weight",
	"FontSize":   "Font size",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Issue is one failed rule, keyed by the field name the validator reports.
type Issue struct {
	Field   string
	Message string
}

// Issues lists the failed rules of err, or nil when err is not a
// validation error.
func Issues(err error) []Issue {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	issues := make([]Issue, 0, len(validationErrors))
	for _, e := range validationErrors {
		issues = append(issues, Issue{Field: e.Field(), Message: formatSingleError(e)})
	}
	return issues
}

// Message joins the formatted errors into one line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email address", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL", label)
	case "cv_month":
		return fmt.Sprintf("%s: expected a YYYY-MM date", label)
	case "cv_phone":
		return fmt.Sprintf("%s: invalid phone number", label)
	case "cv_theme", "cv_font_family", "cv_font_weight":
		return fmt.Sprintf("%s: unknown value %q", label, e.Value())
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

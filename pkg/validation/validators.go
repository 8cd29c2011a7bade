package validation

import (
	"reflect"
	"regexp"
	"slices"
	"strings"

	"cvcraft-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Month inputs: YYYY-MM, with an optional day for imported data
	monthRegex = regexp.MustCompile(`^[0-9]{4}-(0[1-9]|1[0-2])(-(0[1-9]|[12][0-9]|3[01]))?$`)

	// Phone: optional +, then digits with common separators, 7-20 chars
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ().-]{7,20}$`)
)

// New returns a validator with the CV rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// FormatTag is the struct tag holding the non-blocking format rules.
const FormatTag = "format"

// NewFormat returns a validator that reads the format tag instead of
// validate. Field names in its errors are the JSON names.
func NewFormat() *validator.Validate {
	v := validator.New()
	v.SetTagName(FormatTag)
	v.RegisterTagNameFunc(jsonName)
	RegisterValidators(v)
	return v
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("cv_month", ValidMonth)
	_ = v.RegisterValidation("cv_phone", ValidPhone)
	_ = v.RegisterValidation("cv_theme", oneOfList(domain.ThemeNames))
	_ = v.RegisterValidation("cv_font_family", oneOfList(domain.FontFamilies))
	_ = v.RegisterValidation("cv_font_weight", oneOfList(domain.FontWeights))
}

// ValidMonth accepts an empty value or a YYYY-MM date.
func ValidMonth(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return monthRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

// oneOfList builds a rule matching names that may contain spaces, which
// the builtin oneof tag cannot express.
func oneOfList(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		return slices.Contains(allowed, val)
	}
}

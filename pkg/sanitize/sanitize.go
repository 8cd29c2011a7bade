package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips markup from free text before it enters a document.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func New() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Text removes every tag and unescapes the entities the policy produced,
// so the stored value is plain text. Rendering escapes it again.
func (s *Sanitizer) Text(input string) string {
	if !strings.ContainsAny(input, "<>&") {
		return input
	}
	return html.UnescapeString(s.policy.Sanitize(input))
}

// Value sanitizes strings and string lists, leaving other values alone.
func (s *Sanitizer) Value(value any) any {
	switch v := value.(type) {
	case string:
		return s.Text(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = s.Value(item)
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = s.Text(item)
		}
		return out
	default:
		return value
	}
}

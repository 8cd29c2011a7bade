package sanitize_test

import (
	"testing"

	"cvcraft-backend/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	s := sanitize.New()

	assert.Equal(t, "Plain words", s.Text("Plain words"))
	assert.Equal(t, "Hello", s.Text("<b>Hello</b>"))
	assert.Equal(t, "", s.Text("<script>alert(1)</script>"))
	assert.Equal(t, "R&D lead", s.Text("R&D lead"))
	assert.Equal(t, "Tom & Jerry's", s.Text("<i>Tom</i> & Jerry's"))
}

func TestValue(t *testing.T) {
	s := sanitize.New()

	assert.Equal(t, true, s.Value(true))
	assert.Equal(t, []any{"Go", "SQL"}, s.Value([]any{"<em>Go</em>", "SQL"}))
	assert.Equal(t, []string{"x"}, s.Value([]string{"<p>x</p>"}))
}

package resource

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID_String(t *testing.T) {
	ed := NewID(Editor)
	doc := NewID(Document)

	t.Run("prefix", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(ed.String(), "ed-"))
		assert.True(t, strings.HasPrefix(doc.String(), "doc-"))
	})

	t.Run("unique", func(t *testing.T) {
		assert.NotEqual(t, ed, NewID(Editor))
	})

	t.Run("kind", func(t *testing.T) {
		assert.Equal(t, Document, doc.Kind())
	})
}

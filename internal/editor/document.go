package editor

import (
	"fmt"
	"path/filepath"

	"github.com/leg100/tabbed/internal/pubsub"
	"github.com/leg100/tabbed/internal/resource"
)

// Document is a file being edited.
type Document struct {
	ID resource.ID

	path     string
	untitled int
	content  string
	// saved is the content as last read from or written to disk.
	saved string
	// suspended documents have been opened by a session restore but not yet
	// read from disk.
	suspended bool

	changed pubsub.Signal[struct{}]
}

// FilePath returns the document's absolute file path, or an empty string if
// the document has never been saved.
func (d *Document) FilePath() string {
	return d.path
}

// DisplayName returns the name shown to the user.
func (d *Document) DisplayName() string {
	if d.path == "" {
		return fmt.Sprintf("untitled-%d", d.untitled)
	}
	return filepath.Base(d.path)
}

// IsModified reports whether the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.content != d.saved
}

// IsSuspended reports whether the document is yet to be loaded.
func (d *Document) IsSuspended() bool {
	return d.suspended
}

func (d *Document) Content() string {
	return d.content
}

// OnChanged registers fn to be called whenever the document's path, content
// or modification state changes.
func (d *Document) OnChanged(fn func()) (disconnect func()) {
	return d.changed.Connect(func(struct{}) { fn() })
}

func (d *Document) emitChanged() {
	d.changed.Emit(struct{}{})
}

// Editor is an open view onto a document.
type Editor struct {
	ID resource.ID

	doc *Document
}

func (e *Editor) Document() *Document {
	return e.doc
}

func (e *Editor) String() string {
	return e.doc.DisplayName()
}

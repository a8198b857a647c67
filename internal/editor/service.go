// Package editor is tabbed's editor manager: it owns open documents and the
// editors viewing them, and notifies listeners as editors are opened, closed
// and activated.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/pubsub"
	"github.com/leg100/tabbed/internal/resource"
)

// ErrUntitled is returned when saving a document that has no file path.
var ErrUntitled = errors.New("document has no file path")

// ActivateFlag modifies the behaviour of ActivateEditor.
type ActivateFlag int

const (
	// DoNotChangeCurrent loads the editor's document, if suspended, without
	// making it the current editor.
	DoNotChangeCurrent ActivateFlag = 1 << iota
)

// FileWatcher is notified of the files the service has open.
type FileWatcher interface {
	Add(path string) error
	Remove(path string) error
}

type ServiceOptions struct {
	Logger  logging.Interface
	Watcher FileWatcher
}

// Service manages open editors. It is not safe for concurrent use: it is
// driven from the TUI's update loop, and emits its notifications
// synchronously on that loop.
type Service struct {
	// editors in the order they were opened
	editors []*Editor
	// history of activated editors, most recent last
	history  []*Editor
	current  *Editor
	untitled int

	logger  logging.Interface
	watcher FileWatcher

	opened         pubsub.Signal[*Editor]
	closed         pubsub.Signal[[]*Editor]
	currentChanged pubsub.Signal[*Editor]
}

func NewService(opts ServiceOptions) *Service {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	return &Service{
		logger:  opts.Logger,
		watcher: opts.Watcher,
	}
}

// OnEditorOpened registers fn to be called after an editor is opened.
func (s *Service) OnEditorOpened(fn func(*Editor)) (disconnect func()) {
	return s.opened.Connect(fn)
}

// OnEditorsClosed registers fn to be called after editors are closed.
func (s *Service) OnEditorsClosed(fn func([]*Editor)) (disconnect func()) {
	return s.closed.Connect(fn)
}

// OnCurrentEditorChanged registers fn to be called when the current editor
// changes. The editor is nil when no editors remain.
func (s *Service) OnCurrentEditorChanged(fn func(*Editor)) (disconnect func()) {
	return s.currentChanged.Connect(fn)
}

// Open opens the file at path and makes its editor current. If the file is
// already open its existing editor is activated instead. A path that does not
// exist yet opens an empty document that is created on save.
func (s *Service) Open(path string) (*Editor, error) {
	ed, err := s.open(path, false)
	if err != nil {
		return nil, err
	}
	if err := s.ActivateEditor(ed, 0); err != nil {
		return nil, err
	}
	return ed, nil
}

// OpenSuspended opens the file at path without reading it or changing the
// current editor. The document is read upon its first activation.
func (s *Service) OpenSuspended(path string) (*Editor, error) {
	return s.open(path, true)
}

func (s *Service) open(path string, suspended bool) (*Editor, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if ed := s.EditorForPath(abs); ed != nil {
		return ed, nil
	}
	doc := &Document{
		ID:        resource.NewID(resource.Document),
		path:      abs,
		suspended: true,
	}
	if !suspended {
		if err := s.load(doc); err != nil {
			return nil, err
		}
	}
	ed := &Editor{ID: resource.NewID(resource.Editor), doc: doc}
	s.editors = append(s.editors, ed)
	s.watch(abs)
	s.logger.Debug("opened editor", "editor", ed.ID, "path", abs, "suspended", suspended)

	s.opened.Emit(ed)
	return ed, nil
}

// New opens an editor onto a new untitled document and makes it current.
func (s *Service) New() *Editor {
	s.untitled++
	doc := &Document{
		ID:       resource.NewID(resource.Document),
		untitled: s.untitled,
	}
	ed := &Editor{ID: resource.NewID(resource.Editor), doc: doc}
	s.editors = append(s.editors, ed)
	s.opened.Emit(ed)
	// untitled documents are never suspended so activation cannot fail
	_ = s.ActivateEditor(ed, 0)
	return ed
}

func (s *Service) load(doc *Document) error {
	content, err := os.ReadFile(doc.path)
	if errors.Is(err, fs.ErrNotExist) {
		content = nil
	} else if err != nil {
		return fmt.Errorf("reading %s: %w", doc.path, err)
	}
	doc.content = string(content)
	doc.saved = doc.content
	doc.suspended = false
	return nil
}

// ActivateEditor loads the editor's document if it is suspended, and unless
// DoNotChangeCurrent is set, makes the editor the current editor.
func (s *Service) ActivateEditor(ed *Editor, flags ActivateFlag) error {
	if !slices.Contains(s.editors, ed) {
		return resource.ErrNotFound
	}
	if ed.doc.suspended {
		if err := s.load(ed.doc); err != nil {
			return err
		}
		ed.doc.emitChanged()
	}
	if flags&DoNotChangeCurrent != 0 || ed == s.current {
		return nil
	}
	s.setCurrent(ed)
	return nil
}

func (s *Service) setCurrent(ed *Editor) {
	s.current = ed
	if ed != nil {
		s.history = slices.DeleteFunc(s.history, func(e *Editor) bool { return e == ed })
		s.history = append(s.history, ed)
	}
	s.currentChanged.Emit(ed)
}

// CloseEditors closes the given editors, discarding unsaved changes. If the
// current editor is closed, the most recently used remaining editor becomes
// current.
func (s *Service) CloseEditors(eds ...*Editor) {
	var closed []*Editor
	for _, ed := range eds {
		i := slices.Index(s.editors, ed)
		if i == -1 {
			continue
		}
		s.editors = slices.Delete(s.editors, i, i+1)
		s.history = slices.DeleteFunc(s.history, func(e *Editor) bool { return e == ed })
		s.unwatch(ed.doc.path)
		closed = append(closed, ed)
	}
	if len(closed) == 0 {
		return
	}
	s.logger.Debug("closed editors", "count", len(closed))
	s.closed.Emit(closed)

	if slices.Contains(closed, s.current) {
		var next *Editor
		if len(s.history) > 0 {
			next = s.history[len(s.history)-1]
		} else if len(s.editors) > 0 {
			next = s.editors[len(s.editors)-1]
		}
		if next != nil {
			if err := s.ActivateEditor(next, 0); err != nil {
				s.logger.Error("activating editor", "editor", next.ID, "error", err)
				s.setCurrent(nil)
			}
		} else {
			s.setCurrent(nil)
		}
	}
}

// CloseAll closes every editor.
func (s *Service) CloseAll() {
	s.CloseEditors(slices.Clone(s.editors)...)
}

// CurrentEditor returns the current editor, or nil.
func (s *Service) CurrentEditor() *Editor {
	return s.current
}

// Editors returns the open editors in document model order: by display name,
// then by path.
func (s *Service) Editors() []*Editor {
	sorted := slices.Clone(s.editors)
	slices.SortStableFunc(sorted, func(a, b *Editor) int {
		if c := strings.Compare(strings.ToLower(a.doc.DisplayName()), strings.ToLower(b.doc.DisplayName())); c != 0 {
			return c
		}
		return strings.Compare(a.doc.path, b.doc.path)
	})
	return sorted
}

// EditorForPath returns the editor for the document at the absolute path,
// or nil.
func (s *Service) EditorForPath(path string) *Editor {
	if path == "" {
		return nil
	}
	for _, ed := range s.editors {
		if ed.doc.path == path {
			return ed
		}
	}
	return nil
}

// SetContent replaces the content of the editor's document.
func (s *Service) SetContent(ed *Editor, content string) {
	if ed.doc.content == content {
		return
	}
	ed.doc.content = content
	ed.doc.emitChanged()
}

// Save writes the editor's document to disk.
func (s *Service) Save(ed *Editor) error {
	doc := ed.doc
	if doc.path == "" {
		return ErrUntitled
	}
	if doc.suspended {
		// nothing to write
		return nil
	}
	if err := os.WriteFile(doc.path, []byte(doc.content), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", doc.path, err)
	}
	doc.saved = doc.content
	// the watcher only sees files that exist
	s.watch(doc.path)
	s.logger.Info("saved document", "path", doc.path)
	doc.emitChanged()
	return nil
}

// SaveAs writes the editor's document to a new path, which the document then
// adopts.
func (s *Service) SaveAs(ed *Editor, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}
	if other := s.EditorForPath(abs); other != nil && other != ed {
		return fmt.Errorf("%s is open in another editor: %w", abs, resource.ErrExists)
	}
	doc := ed.doc
	if doc.suspended {
		if err := s.load(doc); err != nil {
			return err
		}
	}
	old := doc.path
	doc.path = abs
	if err := s.Save(ed); err != nil {
		doc.path = old
		return err
	}
	if old != "" && old != abs {
		s.unwatch(old)
	}
	return nil
}

// Reload re-reads the document at path from disk if it is open, loaded, and
// has no unsaved changes. It reports whether the document was reloaded.
func (s *Service) Reload(path string) (bool, error) {
	ed := s.EditorForPath(path)
	if ed == nil || ed.doc.suspended || ed.doc.IsModified() {
		return false, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reloading %s: %w", path, err)
	}
	if string(content) == ed.doc.content {
		return false, nil
	}
	ed.doc.content = string(content)
	ed.doc.saved = ed.doc.content
	ed.doc.emitChanged()
	return true, nil
}

func (s *Service) watch(path string) {
	if s.watcher == nil || path == "" {
		return
	}
	if err := s.watcher.Add(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("watching file", "path", path, "error", err)
	}
}

func (s *Service) unwatch(path string) {
	if s.watcher == nil || path == "" {
		return
	}
	_ = s.watcher.Remove(path)
}

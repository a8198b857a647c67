// Package tabbar provides a bar of tabs, one per open editor, through which
// the user switches between editors. The bar keeps the order of its tabs
// across sessions.
package tabbar

import (
	"slices"

	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/pubsub"
	"github.com/leg100/tabbed/internal/taborder"
)

// EditorManager is the host that owns editors.
type EditorManager interface {
	ActivateEditor(ed *editor.Editor, flags editor.ActivateFlag) error
	CloseEditors(eds ...*editor.Editor)
	CurrentEditor() *editor.Editor
	Editors() []*editor.Editor

	OnEditorOpened(fn func(*editor.Editor)) (disconnect func())
	OnEditorsClosed(fn func([]*editor.Editor)) (disconnect func())
	OnCurrentEditorChanged(fn func(*editor.Editor)) (disconnect func())
}

// SessionManager is the host that owns sessions.
type SessionManager interface {
	ActiveSession() string

	OnSessionLoaded(fn func(name string)) (disconnect func())
	OnAboutToSaveSession(fn func()) (disconnect func())
	OnSessionRenamed(fn func(oldName, newName string)) (disconnect func())
	OnSessionRemoved(fn func(name string)) (disconnect func())
}

// IconProvider looks up the icon for a file path.
type IconProvider interface {
	Icon(path string) string
}

type Options struct {
	Editors EditorManager
	Icons   IconProvider
	// Actions populates the context menu. The menu is disabled if nil.
	Actions ActionProvider
	// Engine persists tab order. Persistence is disabled if nil.
	Engine *taborder.Engine
	Logger logging.Interface
}

type tab struct {
	editor  *editor.Editor
	label   string
	icon    string
	tooltip string
	// disconnects the handler for changes to the editor's document
	disconnect func()
}

// Bar is a tab bar. Each tab belongs to an open editor, and the tab at index
// i always belongs to the editor at index i: the two are held in one slice.
//
// Bar is not safe for concurrent use; it is driven from the TUI's update
// loop, as are the host's notifications.
type Bar struct {
	tabs []tab
	// index of the current tab, or -1 if there are no tabs
	current int

	editors EditorManager
	icons   IconProvider
	actions ActionProvider
	engine  *taborder.Engine
	logger  logging.Interface

	currentChanged pubsub.Signal[int]
	disconnects    []func()

	// index of the first visible tab
	offset int
	width  int

	drag *drag
	menu *menu
}

// New constructs a bar populated with the host's open editors, and keeps it
// in step with the host thereafter.
func New(opts Options) *Bar {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	b := &Bar{
		current: -1,
		editors: opts.Editors,
		icons:   opts.Icons,
		actions: opts.Actions,
		engine:  opts.Engine,
		logger:  opts.Logger,
	}
	b.currentChanged.Connect(b.activateEditor)

	// the host already knows its current editor
	current := opts.Editors.CurrentEditor()
	previous := b.currentChanged.Block(true)
	for _, ed := range opts.Editors.Editors() {
		b.AddEditorTab(ed)
	}
	b.SelectEditorTab(current)
	b.currentChanged.Block(previous)

	b.disconnects = append(b.disconnects,
		opts.Editors.OnEditorOpened(b.AddEditorTab),
		opts.Editors.OnEditorsClosed(b.RemoveEditorTabs),
		opts.Editors.OnCurrentEditorChanged(b.SelectEditorTab),
	)
	return b
}

// Close disconnects the bar from its hosts.
func (b *Bar) Close() {
	for _, disconnect := range b.disconnects {
		disconnect()
	}
	b.disconnects = nil
	for _, t := range b.tabs {
		t.disconnect()
	}
}

// AddEditorTab appends a tab for ed. The first tab added to an empty bar
// becomes the current tab.
func (b *Bar) AddEditorTab(ed *editor.Editor) {
	if b.IndexOf(ed) != -1 {
		return
	}
	t := b.describe(ed)
	t.disconnect = ed.Document().OnChanged(func() {
		b.refresh(ed)
	})
	b.tabs = append(b.tabs, t)
	b.logger.Debug("added tab", "editor", ed.ID, "index", len(b.tabs)-1)

	if b.current == -1 {
		b.setCurrentIndex(0)
	}
}

// RemoveEditorTabs removes the tabs of the given editors. Editors without a
// tab are ignored. The current index is adjusted without asking the host to
// activate an editor; the host picks the new current editor itself.
func (b *Bar) RemoveEditorTabs(eds []*editor.Editor) {
	previous := b.currentChanged.Block(true)
	defer b.currentChanged.Block(previous)

	for _, ed := range eds {
		if i := b.IndexOf(ed); i != -1 {
			b.removeTab(i)
		}
	}
}

func (b *Bar) removeTab(i int) {
	removed := b.tabs[i]
	removed.disconnect()
	b.tabs = slices.Delete(b.tabs, i, i+1)
	b.drag = nil
	if b.menu != nil && b.menu.editor == removed.editor {
		b.menu = nil
	}

	switch {
	case len(b.tabs) == 0:
		b.setCurrentIndex(-1)
	case i < b.current:
		b.setCurrentIndex(b.current - 1)
	case i == b.current:
		// the tab to the right takes its place, or the new last tab.
		b.current = -1
		b.setCurrentIndex(min(i, len(b.tabs)-1))
	}
	b.offset = min(b.offset, max(0, len(b.tabs)-1))
}

// SelectEditorTab makes the tab of ed current. It is a no-op if ed has no
// tab.
func (b *Bar) SelectEditorTab(ed *editor.Editor) {
	if i := b.IndexOf(ed); i != -1 {
		b.setCurrentIndex(i)
	}
}

// SetCurrentIndex makes the tab at index current. Out of range indices are
// ignored.
func (b *Bar) SetCurrentIndex(index int) {
	if index < 0 || index >= len(b.tabs) {
		return
	}
	b.setCurrentIndex(index)
}

func (b *Bar) setCurrentIndex(index int) {
	if index == b.current {
		return
	}
	b.current = index
	b.ScrollToCurrent()
	b.currentChanged.Emit(index)
}

// activateEditor asks the host to activate the editor of the tab at index.
func (b *Bar) activateEditor(index int) {
	if index < 0 || index >= len(b.tabs) {
		return
	}
	ed := b.tabs[index].editor
	if err := b.editors.ActivateEditor(ed, 0); err != nil {
		b.logger.Error("activating editor", "editor", ed.ID, "error", err)
	}
}

// CloseTab asks the host to close the editor of the tab at index, removing
// the tab if the host has not already done so.
func (b *Bar) CloseTab(index int) {
	if index < 0 || index >= len(b.tabs) {
		return
	}
	ed := b.tabs[index].editor
	b.editors.CloseEditors(ed)
	if b.IndexOf(ed) != -1 {
		b.RemoveEditorTabs([]*editor.Editor{ed})
	}
}

// MoveTab moves the tab at from to to. The current tab remains current
// wherever it ends up. Out of range indices are ignored.
func (b *Bar) MoveTab(from, to int) {
	if from < 0 || from >= len(b.tabs) || to < 0 || to >= len(b.tabs) || from == to {
		return
	}
	t := b.tabs[from]
	b.tabs = slices.Delete(b.tabs, from, from+1)
	b.tabs = slices.Insert(b.tabs, to, t)

	switch {
	case b.current == from:
		b.current = to
	case from < b.current && b.current <= to:
		b.current--
	case to <= b.current && b.current < from:
		b.current++
	}
	if b.drag != nil && b.drag.index == from {
		b.drag.index = to
	}
}

// Count returns the number of tabs.
func (b *Bar) Count() int {
	return len(b.tabs)
}

// TabPath returns the file path of the document of the tab at index.
func (b *Bar) TabPath(index int) string {
	if index < 0 || index >= len(b.tabs) {
		return ""
	}
	return b.tabs[index].editor.Document().FilePath()
}

// CurrentIndex returns the index of the current tab, or -1 if there are no
// tabs.
func (b *Bar) CurrentIndex() int {
	return b.current
}

// EditorAt returns the editor of the tab at index, or nil.
func (b *Bar) EditorAt(index int) *editor.Editor {
	if index < 0 || index >= len(b.tabs) {
		return nil
	}
	return b.tabs[index].editor
}

// IndexOf returns the index of the tab of ed, or -1.
func (b *Bar) IndexOf(ed *editor.Editor) int {
	if ed == nil {
		return -1
	}
	return slices.IndexFunc(b.tabs, func(t tab) bool { return t.editor == ed })
}

// Label returns the label of the tab at index.
func (b *Bar) Label(index int) string {
	if index < 0 || index >= len(b.tabs) {
		return ""
	}
	return b.tabs[index].label
}

// Tooltip returns the tooltip of the current tab.
func (b *Bar) Tooltip() string {
	if b.current == -1 {
		return ""
	}
	return b.tabs[b.current].tooltip
}

// SelectTab makes the tab at position n (zero-based) current. Positions
// without a tab are ignored.
func (b *Bar) SelectTab(n int) {
	b.SetCurrentIndex(n)
}

// PrevTab makes the tab to the left of the current tab current, wrapping
// around to the last tab.
func (b *Bar) PrevTab() {
	if len(b.tabs) == 0 {
		return
	}
	b.setCurrentIndex((b.current - 1 + len(b.tabs)) % len(b.tabs))
}

// NextTab makes the tab to the right of the current tab current, wrapping
// around to the first tab.
func (b *Bar) NextTab() {
	if len(b.tabs) == 0 {
		return
	}
	b.setCurrentIndex((b.current + 1) % len(b.tabs))
}

func (b *Bar) describe(ed *editor.Editor) tab {
	doc := ed.Document()
	t := tab{
		editor:  ed,
		label:   doc.DisplayName(),
		tooltip: doc.FilePath(),
	}
	if doc.IsModified() {
		t.label += "*"
	}
	if t.tooltip == "" {
		t.tooltip = doc.DisplayName()
	}
	if b.icons != nil {
		t.icon = b.icons.Icon(doc.FilePath())
	}
	return t
}

// refresh updates the tab of ed following a change to its document.
func (b *Bar) refresh(ed *editor.Editor) {
	i := b.IndexOf(ed)
	if i == -1 {
		return
	}
	t := b.describe(ed)
	t.disconnect = b.tabs[i].disconnect
	b.tabs[i] = t
}

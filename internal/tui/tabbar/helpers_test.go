package tabbar

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabbed/internal/editor"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Disable color in tests
	lipgloss.SetColorProfile(termenv.Ascii)
}

type activation struct {
	editor *editor.Editor
	// whether the editor was open when the bar asked for it to be activated
	open bool
}

// spyEditors records the bar's requests to activate editors.
type spyEditors struct {
	*editor.Service

	activations []activation
}

func (s *spyEditors) ActivateEditor(ed *editor.Editor, flags editor.ActivateFlag) error {
	s.activations = append(s.activations, activation{
		editor: ed,
		open:   slices.Contains(s.Service.Editors(), ed),
	})
	return s.Service.ActivateEditor(ed, flags)
}

type fakeActions struct {
	ran []string
}

func (f *fakeActions) SaveAndCloseActions(*editor.Editor) []Action {
	return []Action{f.action("Save"), f.action("Close")}
}

func (f *fakeActions) FileActions(*editor.Editor) []Action {
	return []Action{f.action("Open With…")}
}

func (f *fakeActions) action(label string) Action {
	return Action{Label: label, Run: func() tea.Cmd {
		f.ran = append(f.ran, label)
		return nil
	}}
}

func setup(t *testing.T, opts ...func(*Options)) (*Bar, *spyEditors) {
	t.Helper()

	editors := &spyEditors{Service: editor.NewService(editor.ServiceOptions{})}
	o := Options{Editors: editors}
	for _, fn := range opts {
		fn(&o)
	}
	bar := New(o)
	t.Cleanup(bar.Close)
	return bar, editors
}

// open opens a new file with the given name in a temporary directory.
func open(t *testing.T, editors *spyEditors, dir, name string) *editor.Editor {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	ed, err := editors.Open(path)
	require.NoError(t, err)
	return ed
}

func openAll(t *testing.T, editors *spyEditors, names ...string) []*editor.Editor {
	t.Helper()

	dir := t.TempDir()
	eds := make([]*editor.Editor, len(names))
	for i, name := range names {
		eds[i] = open(t, editors, dir, name)
	}
	return eds
}

func labels(bar *Bar) []string {
	labels := make([]string, bar.Count())
	for i := range labels {
		labels[i] = bar.Label(i)
	}
	return labels
}

// assertAligned checks every tab belongs to exactly one open editor and
// every open editor has a tab, and that the current tab belongs to the
// current editor.
func assertAligned(t *testing.T, bar *Bar, editors *spyEditors) {
	t.Helper()

	open := editors.Editors()
	require.Equal(t, len(open), bar.Count(), "tab count")
	seen := make(map[*editor.Editor]bool)
	for i := 0; i < bar.Count(); i++ {
		ed := bar.EditorAt(i)
		assert.Contains(t, open, ed, "tab %d belongs to a closed editor", i)
		assert.False(t, seen[ed], "editor at tab %d has more than one tab", i)
		seen[ed] = true
	}
	assert.Equal(t, editors.CurrentEditor(), bar.EditorAt(bar.CurrentIndex()))
}

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leg100/tabbed/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("save and load", func(t *testing.T) {
		sessions, editors := setup(t)
		a := openFile(t, editors, "b.go")
		openFile(t, editors, "a.go")
		require.NoError(t, editors.ActivateEditor(a, 0))
		require.NoError(t, sessions.SaveAs("work"))

		// start afresh and reload the saved session
		require.NoError(t, sessions.Load("other"))
		assert.Empty(t, editors.Editors())

		var loaded string
		sessions.OnSessionLoaded(func(name string) { loaded = name })
		require.NoError(t, sessions.Load("work"))

		assert.Equal(t, "work", loaded)
		assert.Equal(t, "work", sessions.ActiveSession())
		require.Len(t, editors.Editors(), 2)
		current := editors.CurrentEditor()
		require.NotNil(t, current)
		assert.Equal(t, "b.go", current.Document().DisplayName())
		assert.False(t, current.Document().IsSuspended())
	})

	t.Run("session files are opened in sorted order", func(t *testing.T) {
		sessions, editors := setup(t)
		dir := t.TempDir()
		for _, name := range []string{"c.go", "a.go", "b.go"} {
			_, err := editors.Open(filepath.Join(dir, name))
			require.NoError(t, err)
		}
		require.NoError(t, sessions.Save())

		var opened []string
		editors.OnEditorOpened(func(ed *editor.Editor) {
			opened = append(opened, ed.Document().DisplayName())
		})
		require.NoError(t, sessions.Load(DefaultName))

		assert.Equal(t, []string{"a.go", "b.go", "c.go"}, opened)
	})

	t.Run("about to save is emitted before writing", func(t *testing.T) {
		sessions, _ := setup(t)
		var existedBeforeSave bool
		sessions.OnAboutToSaveSession(func() {
			existedBeforeSave = sessions.Exists(sessions.ActiveSession())
		})

		require.NoError(t, sessions.Save())

		assert.False(t, existedBeforeSave)
		assert.True(t, sessions.Exists(DefaultName))
	})

	t.Run("list", func(t *testing.T) {
		sessions, _ := setup(t)
		require.NoError(t, sessions.SaveAs("zeta"))
		require.NoError(t, sessions.SaveAs("alpha"))

		got, err := sessions.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "zeta"}, got)
	})

	t.Run("rename", func(t *testing.T) {
		sessions, _ := setup(t)
		require.NoError(t, sessions.SaveAs("old"))
		var got Renamed
		sessions.OnSessionRenamed(func(oldName, newName string) {
			got = Renamed{OldName: oldName, NewName: newName}
		})

		require.NoError(t, sessions.Rename("old", "new"))

		assert.Equal(t, Renamed{OldName: "old", NewName: "new"}, got)
		assert.Equal(t, "new", sessions.ActiveSession())
		assert.False(t, sessions.Exists("old"))
		assert.True(t, sessions.Exists("new"))
	})

	t.Run("rename unsaved active session", func(t *testing.T) {
		sessions, _ := setup(t)
		require.NoError(t, sessions.Rename(DefaultName, "renamed"))
		assert.Equal(t, "renamed", sessions.ActiveSession())
	})

	t.Run("rename onto existing session", func(t *testing.T) {
		sessions, _ := setup(t)
		require.NoError(t, sessions.SaveAs("taken"))
		require.NoError(t, sessions.SaveAs("mine"))

		err := sessions.Rename("mine", "taken")
		assert.ErrorIs(t, err, ErrExists)
	})

	t.Run("remove", func(t *testing.T) {
		sessions, _ := setup(t)
		require.NoError(t, sessions.SaveAs("doomed"))
		require.NoError(t, sessions.SaveAs("survivor"))
		var removed string
		sessions.OnSessionRemoved(func(name string) { removed = name })

		require.NoError(t, sessions.Remove("doomed"))

		assert.Equal(t, "doomed", removed)
		assert.False(t, sessions.Exists("doomed"))
	})

	t.Run("remove active session", func(t *testing.T) {
		sessions, _ := setup(t)
		assert.ErrorIs(t, sessions.Remove(DefaultName), ErrActiveSession)
	})

	t.Run("remove missing session", func(t *testing.T) {
		sessions, _ := setup(t)
		assert.ErrorIs(t, sessions.Remove("ghost"), ErrNotFound)
	})

	t.Run("invalid names", func(t *testing.T) {
		sessions, _ := setup(t)
		for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
			assert.ErrorIs(t, sessions.Load(name), ErrInvalidName, name)
			assert.ErrorIs(t, sessions.SaveAs(name), ErrInvalidName, name)
		}
	})

	t.Run("files deleted since saving are reopened empty", func(t *testing.T) {
		sessions, editors := setup(t)
		path := filepath.Join(t.TempDir(), "gone.go")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		openFile(t, editors, "kept.go")
		_, err := editors.Open(path)
		require.NoError(t, err)
		require.NoError(t, sessions.Save())
		require.NoError(t, os.Remove(path))

		require.NoError(t, sessions.Load(DefaultName))

		assert.Len(t, editors.Editors(), 2)
		gone := editors.EditorForPath(path)
		require.NotNil(t, gone)
		require.NoError(t, editors.ActivateEditor(gone, 0))
		assert.Equal(t, "", gone.Document().Content())
	})
}

func setup(t *testing.T) (*Service, *editor.Service) {
	t.Helper()

	editors := editor.NewService(editor.ServiceOptions{})
	sessions, err := NewService(ServiceOptions{
		Dir:     filepath.Join(t.TempDir(), "sessions"),
		Editors: editors,
	})
	require.NoError(t, err)
	return sessions, editors
}

func openFile(t *testing.T, editors *editor.Service, name string) *editor.Editor {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	ed, err := editors.Open(path)
	require.NoError(t, err)
	return ed
}

package taborder

import (
	"testing"

	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine(t *testing.T) {
	t.Run("round trip issues no moves", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		tabs := newFakeContainer("/a.go", "/b.go", "/c.go")

		require.NoError(t, engine.Save("default", tabs))
		got := engine.Restore("default", tabs)

		assert.Equal(t, Outcome{Status: Restored}, got)
		assert.Empty(t, tabs.moves)
	})

	t.Run("restore saved order", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		require.NoError(t, engine.Save("default", newFakeContainer("/c.go", "/a.go", "/b.go")))

		tabs := newFakeContainer("/a.go", "/b.go", "/c.go")
		got := engine.Restore("default", tabs)

		assert.Equal(t, Outcome{Status: Restored, Moves: 1}, got)
		assert.Equal(t, []Move{{From: 2, To: 0}}, tabs.moves)
		assert.Equal(t, []string{"/c.go", "/a.go", "/b.go"}, tabs.paths)
	})

	t.Run("second restore is a no-op", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		require.NoError(t, engine.Save("default", newFakeContainer("/b.go", "/c.go", "/a.go")))

		tabs := newFakeContainer("/a.go", "/b.go", "/c.go")
		first := engine.Restore("default", tabs)
		tabs.moves = nil
		second := engine.Restore("default", tabs)

		assert.Equal(t, 2, first.Moves)
		assert.Equal(t, Outcome{Status: Restored}, second)
		assert.Empty(t, tabs.moves)
	})

	t.Run("no record", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		tabs := newFakeContainer("/a.go")

		got := engine.Restore("default", tabs)

		assert.Equal(t, NoRecord, got.Status)
		assert.Empty(t, tabs.moves)
	})

	t.Run("empty stored value", func(t *testing.T) {
		store := settings.NewMemory()
		require.NoError(t, store.SetValue(Key("default"), ""))
		engine := NewEngine(store, nil)
		tabs := newFakeContainer("/b.go", "/a.go")

		got := engine.Restore("default", tabs)

		assert.Equal(t, NoRecord, got.Status)
		assert.Empty(t, tabs.moves)
	})

	t.Run("record of no tabs", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		require.NoError(t, engine.Save("default", newFakeContainer()))
		tabs := newFakeContainer("/b.go", "/a.go")

		got := engine.Restore("default", tabs)

		assert.Equal(t, Aborted, got.Status)
		assert.ErrorIs(t, got.Reason, ErrCorruptRecord)
		assert.Empty(t, tabs.moves)
	})

	t.Run("corrupt record", func(t *testing.T) {
		store := settings.NewMemory()
		require.NoError(t, store.SetValue(Key("default"), "garbage"))
		engine := NewEngine(store, nil)
		tabs := newFakeContainer("/b.go", "/a.go")

		got := engine.Restore("default", tabs)

		assert.Equal(t, Aborted, got.Status)
		assert.Empty(t, tabs.moves)
	})

	t.Run("count mismatch", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		require.NoError(t, engine.Save("default", newFakeContainer("/c.go", "/b.go", "/a.go")))
		tabs := newFakeContainer("/a.go", "/b.go")

		got := engine.Restore("default", tabs)

		assert.Equal(t, Aborted, got.Status)
		assert.ErrorIs(t, got.Reason, ErrCountMismatch)
		assert.Empty(t, tabs.moves)
		assert.Equal(t, []string{"/a.go", "/b.go"}, tabs.paths)
	})

	t.Run("unmatched path", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		require.NoError(t, engine.Save("default", newFakeContainer("/c.go", "/b.go", "/a.go")))
		tabs := newFakeContainer("/a.go", "/b.go", "/x.go")

		got := engine.Restore("default", tabs)

		assert.Equal(t, Aborted, got.Status)
		assert.ErrorIs(t, got.Reason, ErrUnmatchedPath)
		assert.Empty(t, tabs.moves)
	})

	t.Run("unsaved documents are not recorded", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		require.NoError(t, engine.Save("default", newFakeContainer("/b.go", "", "/a.go")))

		got, err := engine.Load("default")
		require.NoError(t, err)
		assert.Equal(t, []string{"/b.go", "/a.go"}, got)

		// the untitled tab makes the live count differ from the record
		tabs := newFakeContainer("/a.go", "", "/b.go")
		assert.Equal(t, Aborted, engine.Restore("default", tabs).Status)
	})

	t.Run("rename", func(t *testing.T) {
		store := settings.NewMemory()
		engine := NewEngine(store, nil)
		require.NoError(t, engine.Save("old", newFakeContainer("/a.go")))

		require.NoError(t, engine.Rename("old", "new"))

		ok, err := store.Contains(Key("old"))
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := engine.Load("new")
		require.NoError(t, err)
		assert.Equal(t, []string{"/a.go"}, got)
	})

	t.Run("rename missing record", func(t *testing.T) {
		store := settings.NewMemory()
		engine := NewEngine(store, nil)

		require.NoError(t, engine.Rename("old", "new"))

		ok, err := store.Contains(Key("new"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		engine := NewEngine(settings.NewMemory(), nil)
		require.NoError(t, engine.Save("default", newFakeContainer("/a.go")))

		require.NoError(t, engine.Remove("default"))

		got, err := engine.Load("default")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestEngine_SaveLogsRecordedTabs(t *testing.T) {
	logger := logging.NewLogger(logging.Options{Level: "debug"})
	engine := NewEngine(settings.NewMemory(), logger)

	require.NoError(t, engine.Save("default", newFakeContainer("/a.go", "", "/b.go")))

	msgs := logger.List()
	require.Len(t, msgs, 1)
	assert.Equal(t, "saved tab order", msgs[0].Message)
	assert.Contains(t, msgs[0].Attributes, logging.Attr{Key: "tabs", Value: "2"})
}

type fakeContainer struct {
	paths []string
	moves []Move
}

func newFakeContainer(paths ...string) *fakeContainer {
	return &fakeContainer{paths: paths}
}

func (f *fakeContainer) Count() int { return len(f.paths) }

func (f *fakeContainer) TabPath(index int) string { return f.paths[index] }

func (f *fakeContainer) MoveTab(from, to int) {
	f.moves = append(f.moves, Move{From: from, To: to})
	Apply(f.paths, []Move{{From: from, To: to}})
}

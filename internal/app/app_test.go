package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/settings"
	"github.com/leg100/tabbed/internal/taborder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFiles(t *testing.T) {
	t.Parallel()

	dir := setupFiles(t)
	tm := setup(t, t.TempDir(), paths(dir, "alpha.txt", "beta.txt", "gamma.txt")...)

	// Expect a tab for each file in the order they were opened.
	waitFor(t, tm, func(s string) bool {
		return matchPattern(t, `alpha\.txt.*beta\.txt.*gamma\.txt`, s)
	})
}

func TestQuit(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	tm := setup(t, dataDir, paths(setupFiles(t), "alpha.txt")...)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "alpha.txt")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	// Quitting saves the active session.
	assert.FileExists(t, filepath.Join(dataDir, "sessions", "default.yaml"))
}

func TestTabOrderRestored(t *testing.T) {
	t.Parallel()

	dir := setupFiles(t)
	dataDir := t.TempDir()

	t.Run("arrange tabs", func(t *testing.T) {
		tm := setup(t, dataDir, paths(dir, "alpha.txt", "beta.txt", "gamma.txt")...)
		waitFor(t, tm, func(s string) bool {
			return matchPattern(t, `alpha\.txt.*beta\.txt.*gamma\.txt`, s)
		})

		// Move the current tab, gamma, to the front.
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{','}, Alt: true})
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{','}, Alt: true})
		waitFor(t, tm, func(s string) bool {
			return matchPattern(t, `gamma\.txt.*alpha\.txt.*beta\.txt`, s)
		})

		tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
		tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
	})

	t.Run("record", func(t *testing.T) {
		store, err := settings.OpenSQLite(filepath.Join(dataDir, "settings.db"))
		require.NoError(t, err)
		defer store.Close()

		var buf bytes.Buffer
		err = writeRecord(&buf, taborder.NewEngine(store, logging.Discard), "default")
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"found": true`)
		assert.Regexp(t, `(?s)gamma\.txt.*alpha\.txt.*beta\.txt`, buf.String())
	})

	t.Run("reload session", func(t *testing.T) {
		// The session file lists files in name order; the tabs are put back
		// in the order they were left in.
		tm := setup(t, dataDir)
		waitFor(t, tm, func(s string) bool {
			return matchPattern(t, `gamma\.txt.*alpha\.txt.*beta\.txt`, s)
		})
	})
}

func TestDumpRecord_NoRecord(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := dumpRecord(&buf, config{DataDir: t.TempDir(), DumpRecord: "work"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"key": "TabsInfo_work"`)
	assert.Contains(t, buf.String(), `"found": false`)
}

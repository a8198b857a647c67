package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/hokaccha/go-prettyjson"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/settings"
	"github.com/leg100/tabbed/internal/taborder"
)

type recordDump struct {
	Session string   `json:"session"`
	Key     string   `json:"key"`
	Found   bool     `json:"found"`
	Paths   []string `json:"paths"`
}

// dumpRecord prints the tab order saved for a session.
func dumpRecord(w io.Writer, cfg config) error {
	store, err := settings.OpenSQLite(filepath.Join(cfg.DataDir, "settings.db"))
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}
	defer store.Close()

	return writeRecord(w, taborder.NewEngine(store, logging.Discard), cfg.DumpRecord)
}

func writeRecord(w io.Writer, engine *taborder.Engine, session string) error {
	paths, err := engine.Load(session)
	if err != nil {
		return fmt.Errorf("loading tab order for session %s: %w", session, err)
	}
	dump := recordDump{
		Session: session,
		Key:     taborder.Key(session),
		Found:   paths != nil,
		Paths:   paths,
	}
	if dump.Paths == nil {
		dump.Paths = []string{}
	}
	f := prettyjson.NewFormatter()
	f.DisabledColor = true
	b, err := f.Marshal(dump)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

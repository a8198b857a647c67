// Package taborder persists the order of a session's tabs and restores it
// when the session is next loaded.
package taborder

import (
	"fmt"
	"slices"

	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/settings"
)

const keyPrefix = "TabsInfo_"

// Key returns the settings key under which a session's record is stored.
func Key(session string) string {
	return keyPrefix + session
}

// Container is an ordered set of tabs that can be reordered.
type Container interface {
	// Count returns the number of tabs.
	Count() int
	// TabPath returns the file path of the document behind the tab at index,
	// or an empty string if the document has never been saved.
	TabPath(index int) string
	// MoveTab moves the tab at from to to.
	MoveTab(from, to int)
}

// Status is the result of a restoration.
type Status int

const (
	// NoRecord means the session has no saved order.
	NoRecord Status = iota
	// Aborted means a record exists but could not be applied; tabs are left
	// untouched.
	Aborted
	// Restored means the saved order was applied.
	Restored
)

func (s Status) String() string {
	return [...]string{"no record", "aborted", "restored"}[s]
}

// Outcome describes a restoration.
type Outcome struct {
	Status Status
	// Moves is the number of moves issued to the container.
	Moves int
	// Reason is set when Status is Aborted.
	Reason error
}

// Engine saves and restores tab orders in a settings store.
type Engine struct {
	store  settings.Store
	logger logging.Interface
}

func NewEngine(store settings.Store, logger logging.Interface) *Engine {
	if logger == nil {
		logger = logging.Discard
	}
	return &Engine{store: store, logger: logger}
}

// Save records the order of the container's tabs for session, replacing any
// previous record.
func (e *Engine) Save(session string, c Container) error {
	paths := slices.DeleteFunc(livePaths(c), func(path string) bool {
		return path == ""
	})
	record, err := Encode(paths)
	if err != nil {
		return err
	}
	if err := e.store.SetValue(Key(session), record); err != nil {
		return fmt.Errorf("saving tab order: %w", err)
	}
	e.logger.Debug("saved tab order", "session", session, "tabs", len(paths))
	return nil
}

// Restore reorders the container's tabs to match the order saved for
// session. Restoration is all or nothing: if the record is missing, corrupt,
// or describes a different set of tabs, the container is left untouched.
func (e *Engine) Restore(session string, c Container) Outcome {
	saved, err := e.Load(session)
	if err != nil {
		e.logger.Warn("discarding saved tab order", "session", session, "error", err)
		return Outcome{Status: Aborted, Reason: err}
	}
	if saved == nil {
		return Outcome{Status: NoRecord}
	}
	if len(saved) == 0 {
		return e.abort(session, fmt.Errorf("%w: empty record", ErrCorruptRecord))
	}
	moves, err := Plan(livePaths(c), saved)
	if err != nil {
		return e.abort(session, err)
	}
	for _, mv := range moves {
		c.MoveTab(mv.From, mv.To)
	}
	e.logger.Debug("restored tab order", "session", session, "moves", len(moves))
	return Outcome{Status: Restored, Moves: len(moves)}
}

func (e *Engine) abort(session string, reason error) Outcome {
	e.logger.Debug("skipping tab order restoration", "session", session, "reason", reason)
	return Outcome{Status: Aborted, Reason: reason}
}

// Load returns the paths saved for session. A nil slice and nil error means
// there is no record.
func (e *Engine) Load(session string) ([]string, error) {
	record, err := e.store.Value(Key(session))
	if err != nil {
		return nil, err
	}
	if record == "" {
		return nil, nil
	}
	paths, err := Decode(record)
	if err != nil {
		return nil, err
	}
	if paths == nil {
		paths = []string{}
	}
	return paths, nil
}

// Rename moves the record for session oldName to newName. It is a no-op if
// oldName has no record.
func (e *Engine) Rename(oldName, newName string) error {
	ok, err := e.store.Contains(Key(oldName))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	record, err := e.store.Value(Key(oldName))
	if err != nil {
		return err
	}
	if err := e.store.SetValue(Key(newName), record); err != nil {
		return err
	}
	return e.store.Remove(Key(oldName))
}

// Remove deletes the record for session.
func (e *Engine) Remove(session string) error {
	return e.store.Remove(Key(session))
}

func livePaths(c Container) []string {
	paths := make([]string, c.Count())
	for i := range paths {
		paths[i] = c.TabPath(i)
	}
	return paths
}

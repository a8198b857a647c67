package tabbar

import (
	"slices"

	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/taborder"
)

// Connect keeps the order of the bar's tabs with the host's sessions: the
// order is saved when a session is saved, and restored when a session is
// loaded. Records follow sessions that are renamed or removed.
func (b *Bar) Connect(sessions SessionManager) {
	b.disconnects = append(b.disconnects,
		sessions.OnSessionLoaded(b.sessionLoaded),
		sessions.OnAboutToSaveSession(func() {
			if err := b.SaveTabsInfo(sessions.ActiveSession()); err != nil {
				b.logger.Error("saving tab order", "session", sessions.ActiveSession(), "error", err)
			}
		}),
		sessions.OnSessionRenamed(b.sessionRenamed),
		sessions.OnSessionRemoved(b.sessionRemoved),
	)
}

func (b *Bar) sessionLoaded(name string) {
	current := b.editors.CurrentEditor()
	// load every document the session opened
	for _, t := range slices.Clone(b.tabs) {
		if err := b.editors.ActivateEditor(t.editor, editor.DoNotChangeCurrent); err != nil {
			b.logger.Warn("loading document", "editor", t.editor.ID, "error", err)
		}
	}
	if current != nil {
		if err := b.editors.ActivateEditor(current, 0); err != nil {
			b.logger.Warn("activating editor", "editor", current.ID, "error", err)
		}
	}
	b.ReorderTabs(name)
	b.ScrollToCurrent()
}

func (b *Bar) sessionRenamed(oldName, newName string) {
	if b.engine == nil {
		return
	}
	if err := b.engine.Rename(oldName, newName); err != nil {
		b.logger.Error("renaming tab order", "from", oldName, "to", newName, "error", err)
	}
}

func (b *Bar) sessionRemoved(name string) {
	if b.engine == nil {
		return
	}
	if err := b.engine.Remove(name); err != nil {
		b.logger.Error("removing tab order", "session", name, "error", err)
	}
}

// SaveTabsInfo records the order of the tabs for session.
func (b *Bar) SaveTabsInfo(session string) error {
	if b.engine == nil {
		return nil
	}
	return b.engine.Save(session, b)
}

// ReorderTabs restores the order of the tabs recorded for session. The tabs
// are left untouched unless the record describes exactly the open tabs.
func (b *Bar) ReorderTabs(session string) taborder.Outcome {
	if b.engine == nil {
		return taborder.Outcome{Status: taborder.NoRecord}
	}
	return b.engine.Restore(session, b)
}

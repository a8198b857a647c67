package top

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/session"
	"github.com/leg100/tabbed/internal/tui"
)

// Prompt actions are invoked from within the update loop, so they act on the
// services directly and only report their outcome via the returned command.

func openPrompt(editors *editor.Service) tea.Cmd {
	return tui.TextPrompt("Open file", "", func(path string) tea.Cmd {
		if path == "" {
			return nil
		}
		if _, err := editors.Open(path); err != nil {
			return tui.ReportError(err, "opening %s", path)
		}
		return nil
	})
}

func save(editors *editor.Service, ed *editor.Editor) tea.Cmd {
	if ed == nil {
		return nil
	}
	err := editors.Save(ed)
	if errors.Is(err, editor.ErrUntitled) {
		return saveAsPrompt(editors, ed)
	} else if err != nil {
		return tui.ReportError(err, "saving %s", ed.Document().DisplayName())
	}
	return tui.ReportInfo("saved %s", ed.Document().FilePath())
}

func saveAsPrompt(editors *editor.Service, ed *editor.Editor) tea.Cmd {
	if ed == nil {
		return nil
	}
	return tui.TextPrompt("Save as", ed.Document().FilePath(), func(path string) tea.Cmd {
		if path == "" {
			return nil
		}
		if err := editors.SaveAs(ed, path); err != nil {
			return tui.ReportError(err, "saving %s", ed.Document().DisplayName())
		}
		return tui.ReportInfo("saved %s", ed.Document().FilePath())
	})
}

// loadSessionPrompt saves the active session before switching to another.
func loadSessionPrompt(sessions *session.Service) tea.Cmd {
	names, err := sessions.List()
	if err != nil {
		return tui.ReportError(err, "listing sessions")
	}
	return tui.TextPrompt("Load session", "", func(name string) tea.Cmd {
		if name == "" {
			return nil
		}
		if err := sessions.Save(); err != nil {
			return tui.ReportError(err, "saving session %s", sessions.ActiveSession())
		}
		if err := sessions.Load(name); err != nil {
			return tui.ReportError(err, "loading session %s", name)
		}
		return tui.ReportInfo("loaded session %s", name)
	}, names...)
}

func saveSessionAsPrompt(sessions *session.Service) tea.Cmd {
	return tui.TextPrompt("Save session as", "", func(name string) tea.Cmd {
		if name == "" {
			return nil
		}
		if err := sessions.SaveAs(name); err != nil {
			return tui.ReportError(err, "saving session %s", name)
		}
		return tui.ReportInfo("saved session %s", name)
	})
}

func renameSessionPrompt(sessions *session.Service) tea.Cmd {
	old := sessions.ActiveSession()
	return tui.TextPrompt("Rename session", old, func(name string) tea.Cmd {
		if name == "" || name == old {
			return nil
		}
		if err := sessions.Rename(old, name); err != nil {
			return tui.ReportError(err, "renaming session %s", old)
		}
		return tui.ReportInfo("renamed session %s to %s", old, name)
	})
}

func removeSessionPrompt(sessions *session.Service) tea.Cmd {
	names, err := sessions.List()
	if err != nil {
		return tui.ReportError(err, "listing sessions")
	}
	return tui.TextPrompt("Remove session", "", func(name string) tea.Cmd {
		if name == "" {
			return nil
		}
		return tui.YesNoPrompt("Remove session "+name+"?", func() tea.Msg {
			return removeSessionMsg(name)
		})
	}, names...)
}

// removeSessionMsg carries a confirmed removal back into the update loop.
type removeSessionMsg string

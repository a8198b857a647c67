package top

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/tui"
	"github.com/leg100/tabbed/internal/tui/tabbar"
)

// actions populates the tab bar's context menu.
type actions struct {
	editors *editor.Service
	bar     *tabbar.Bar

	fileManager string
	openWith    string
}

func (a *actions) SaveAndCloseActions(ed *editor.Editor) []tabbar.Action {
	return []tabbar.Action{
		{Label: "Save", Run: func() tea.Cmd {
			return save(a.editors, ed)
		}},
		{Label: "Save As…", Run: func() tea.Cmd {
			return saveAsPrompt(a.editors, ed)
		}},
		{Label: "Close", Run: func() tea.Cmd {
			a.bar.CloseTab(a.bar.IndexOf(ed))
			return nil
		}},
		{Label: "Close Others", Run: func() tea.Cmd {
			others := slices.DeleteFunc(a.editors.Editors(), func(other *editor.Editor) bool {
				return other == ed
			})
			a.editors.CloseEditors(others...)
			return nil
		}},
		{Label: "Close All", Run: func() tea.Cmd {
			a.editors.CloseAll()
			return nil
		}},
	}
}

// FileActions returns actions for documents with a file path.
func (a *actions) FileActions(ed *editor.Editor) []tabbar.Action {
	path := ed.Document().FilePath()
	if path == "" {
		return nil
	}
	return []tabbar.Action{
		{Label: "Open Containing Folder", Run: func() tea.Cmd {
			return openContainingFolder(a.fileManager, path)
		}},
		{Label: "Open With…", Run: func() tea.Cmd {
			return tui.TextPrompt("Open with", a.openWith, func(program string) tea.Cmd {
				return openWith(program, path)
			})
		}},
	}
}

// openContainingFolder starts the file manager on the file's directory
// without waiting for it to exit.
func openContainingFolder(fileManager, path string) tea.Cmd {
	if fileManager == "" {
		return tui.ReportError(errors.New("no file manager configured"), "opening containing folder")
	}
	cmd := exec.Command(fileManager, filepath.Dir(path))
	if err := cmd.Start(); err != nil {
		return tui.ReportError(err, "opening containing folder")
	}
	go func() {
		_ = cmd.Wait()
	}()
	return tui.ReportInfo("opened %s", filepath.Dir(path))
}

// openWith hands the file to program, suspending the TUI until it exits.
func openWith(program, path string) tea.Cmd {
	if program == "" {
		return tui.ReportError(errors.New("no program given"), "opening %s", path)
	}
	cmd := exec.Command(program, path)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return tui.NewErrorMsg(fmt.Errorf("running %s: %w", program, err), "opening %s", path)
		}
		return editor.FileChangedMsg{Path: path}
	})
}

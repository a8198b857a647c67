package top

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/session"
	"github.com/leg100/tabbed/internal/taborder"
	"github.com/leg100/tabbed/internal/tui"
	"github.com/leg100/tabbed/internal/tui/keys"
	"github.com/leg100/tabbed/internal/tui/logs"
	"github.com/leg100/tabbed/internal/tui/tabbar"
	"github.com/leg100/tabbed/internal/version"
)

const footerHeight = 1

type Options struct {
	Editors  *editor.Service
	Sessions *session.Service
	Engine   *taborder.Engine
	Icons    tabbar.IconProvider
	Logger   logging.Interface
	// Logs lists log messages for the logs view.
	Logs logs.Lister

	// FileManager is the program that opens a file's directory.
	FileManager string
	// OpenWith is the program that a file is handed to.
	OpenWith string
	Debug    bool
}

type model struct {
	editors  *editor.Service
	sessions *session.Service
	bar      *tabbar.Bar
	logger   logging.Interface

	// the editor whose document is shown in the body
	shown *editor.Editor
	body  textarea.Model
	logs  logs.Model

	width  int
	height int

	showHelp bool
	showLogs bool
	prompt   *tui.Prompt

	// Either an error or an informational message is rendered in the footer.
	err  error
	info string

	dump *os.File
}

// New constructs the top-level TUI model.
func New(opts Options) (model, error) {
	var dump *os.File
	if opts.Debug {
		var err error
		dump, err = os.OpenFile("messages.log", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return model{}, err
		}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}

	actions := &actions{
		editors:     opts.Editors,
		fileManager: opts.FileManager,
		openWith:    opts.OpenWith,
	}
	bar := tabbar.New(tabbar.Options{
		Editors: opts.Editors,
		Icons:   opts.Icons,
		Actions: actions,
		Engine:  opts.Engine,
		Logger:  opts.Logger,
	})
	bar.Connect(opts.Sessions)
	actions.bar = bar

	body := textarea.New()
	body.ShowLineNumbers = true
	body.CharLimit = 0
	body.MaxHeight = 0
	body.Prompt = ""
	body.Focus()

	m := model{
		editors:  opts.Editors,
		sessions: opts.Sessions,
		bar:      bar,
		logger:   opts.Logger,
		body:     body,
		logs:     logs.New(opts.Logs, 0, 0),
		dump:     dump,
	}
	m.syncBody()
	return m, nil
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.SetWidth(m.width)
		m.body.SetWidth(m.width)
		m.body.SetHeight(m.bodyHeight())
		m.logs.SetSize(m.width, m.bodyHeight())
		return m, nil
	case tea.KeyMsg:
		// Pressing any key makes any info/error message in the footer disappear
		m.info = ""
		m.err = nil

		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		_, cmd = m.bar.HandleMouse(msg)
	case tui.PromptMsg:
		m.prompt, cmd = tui.NewPrompt(msg)
	case tui.ErrorMsg:
		if msg.Error != nil {
			err := msg.Error
			msg := fmt.Sprintf(msg.Message, msg.Args...)

			// Both print error in footer as well as log it.
			m.err = fmt.Errorf("%s: %w", msg, err)
			m.logger.Error(msg, "error", err)
		}
	case tui.InfoMsg:
		m.info = string(msg)
	case editor.FileChangedMsg:
		if reloaded, err := m.editors.Reload(msg.Path); err != nil {
			m.logger.Warn("reloading file", "path", msg.Path, "error", err)
		} else if reloaded {
			m.info = "reloaded " + msg.Path
			if ed := m.editors.CurrentEditor(); ed != nil && ed.Document().FilePath() == msg.Path {
				m.body.SetValue(ed.Document().Content())
			}
		}
	case removeSessionMsg:
		if err := m.sessions.Remove(string(msg)); err != nil {
			cmd = tui.ReportError(err, "removing session %s", string(msg))
		} else {
			cmd = tui.ReportInfo("removed session %s", string(msg))
		}
	case logging.Message:
		m.logs.Refresh()
	default:
		if m.prompt != nil {
			cmd = m.prompt.HandleBlink(msg)
		} else {
			m.body, cmd = m.body.Update(msg)
		}
	}

	if m.editors.CurrentEditor() != m.shown {
		m.syncBody()
	}
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.prompt != nil {
		closePrompt, cmd := m.prompt.HandleKey(msg)
		if closePrompt {
			m.prompt = nil
		}
		return cmd
	}
	if m.showHelp || m.showLogs {
		switch {
		case key.Matches(msg, keys.Global.Escape), key.Matches(msg, keys.Global.Help) && m.showHelp, key.Matches(msg, keys.Global.Logs) && m.showLogs:
			m.showHelp = false
			m.showLogs = false
			return nil
		case key.Matches(msg, keys.Global.Quit):
			return m.quit()
		}
		if m.showLogs {
			var cmd tea.Cmd
			m.logs, cmd = m.logs.Update(msg)
			return cmd
		}
		return nil
	}
	if handled, cmd := m.bar.HandleKey(msg); handled {
		return cmd
	}

	switch {
	case key.Matches(msg, keys.Global.Quit):
		return m.quit()
	case key.Matches(msg, keys.Global.Help):
		m.showHelp = true
	case key.Matches(msg, keys.Global.Logs):
		m.logs.Refresh()
		m.showLogs = true
	case key.Matches(msg, keys.Global.Open):
		return openPrompt(m.editors)
	case key.Matches(msg, keys.Global.New):
		m.editors.New()
	case key.Matches(msg, keys.Global.Save):
		return save(m.editors, m.editors.CurrentEditor())
	case key.Matches(msg, keys.Global.SaveAs):
		return saveAsPrompt(m.editors, m.editors.CurrentEditor())
	case key.Matches(msg, keys.Global.LoadSession):
		return loadSessionPrompt(m.sessions)
	case key.Matches(msg, keys.Global.SaveSessionAs):
		return saveSessionAsPrompt(m.sessions)
	case key.Matches(msg, keys.Global.RenameSession):
		return renameSessionPrompt(m.sessions)
	case key.Matches(msg, keys.Global.RemoveSession):
		return removeSessionPrompt(m.sessions)
	default:
		return m.edit(msg)
	}
	return nil
}

// edit passes the key to the body, and any change on to the current
// document.
func (m *model) edit(msg tea.KeyMsg) tea.Cmd {
	if m.shown == nil {
		return nil
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	if value := m.body.Value(); value != m.shown.Document().Content() {
		m.editors.SetContent(m.shown, value)
	}
	return cmd
}

// quit saves the active session and exits.
func (m *model) quit() tea.Cmd {
	if err := m.sessions.Save(); err != nil {
		m.logger.Error("saving session", "session", m.sessions.ActiveSession(), "error", err)
	}
	m.bar.Close()
	if m.dump != nil {
		m.dump.Close()
	}
	return tea.Quit
}

// syncBody shows the current editor's document in the body.
func (m *model) syncBody() {
	m.shown = m.editors.CurrentEditor()
	if m.shown == nil {
		m.body.Reset()
		return
	}
	m.body.SetValue(m.shown.Document().Content())
}

// bodyHeight is the height available between the tab bar and the footer.
func (m model) bodyHeight() int {
	return max(0, m.height-tabbar.Height-footerHeight)
}

var (
	placeholderStyle = tui.Regular.Foreground(tui.InactiveTabColor).Padding(1, 2)
	sessionStyle     = tui.Padded.Foreground(tui.Pink).Bold(true)
	versionStyle     = tui.Padded.Foreground(tui.InactiveTabColor)
)

func (m model) View() string {
	var body string
	switch {
	case m.showHelp:
		body = lipgloss.NewStyle().Margin(1).Render(tui.FullHelpView(
			tui.HelpSection{Title: "tabs", Bindings: append(keys.KeyMapToSlice(keys.Tabs), keys.TabPositions[0], keys.TabPositions[9])},
			tui.HelpSection{Title: "general", Bindings: keys.KeyMapToSlice(keys.Global)},
			tui.HelpSection{Title: "menu", Bindings: keys.KeyMapToSlice(keys.Menu)},
		))
	case m.showLogs:
		body = m.logs.View()
	case m.shown == nil:
		body = placeholderStyle.Render("No open files. Press ^o to open a file or ^t to create one.")
	default:
		body = m.body.View()
	}
	body = tui.Regular.
		Height(m.bodyHeight()).
		MaxHeight(m.bodyHeight()).
		Render(body)
	body = m.bar.Overlay(body)

	// Session and version go in the bottom right corner in the footer.
	metadata := lipgloss.JoinHorizontal(lipgloss.Top,
		sessionStyle.Render(m.sessions.ActiveSession()),
		versionStyle.Render(version.Version),
	)
	available := max(0, m.width-tui.PrintableWidth(metadata))

	// Render the prompt, or any info/error message, or failing that the
	// current tab's tooltip, in the bottom left corner in the footer.
	var footerMsg string
	switch {
	case m.prompt != nil:
		footerMsg = tui.Padded.Render(m.prompt.View())
		footerMsg += tui.ShortHelpView(m.prompt.HelpBindings(), available-tui.PrintableWidth(footerMsg))
	case m.err != nil:
		footerMsg = tui.Padded.
			Foreground(tui.ErrorColor).
			Render("Error: " + m.err.Error())
	case m.info != "":
		footerMsg = tui.Padded.
			Foreground(tui.InfoColor).
			Render(m.info)
	default:
		footerMsg = tui.Padded.Render(tui.TruncateLeft(m.bar.Tooltip(), max(0, available-2), "…"))
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.bar.View(),
		body,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			tui.Regular.
				Inline(true).
				MaxWidth(available).
				Width(available).
				Render(footerMsg),
			metadata,
		),
	)
}

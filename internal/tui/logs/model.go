// Package logs renders tabbed's log messages.
package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/tui"
)

const timeFormat = "2006-01-02T15:04:05.000"

// Lister lists log messages, oldest first.
type Lister interface {
	List() []logging.Message
}

// Model is a scrollable view of log messages, newest at the bottom.
type Model struct {
	lister   Lister
	viewport viewport.Model
}

// New constructs the model. The width and height include the border.
func New(lister Lister, width, height int) Model {
	m := Model{
		lister:   lister,
		viewport: viewport.New(0, 0),
	}
	m.SetSize(width, height)
	return m
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = max(0, width-2-tui.ScrollbarWidth)
	m.viewport.Height = max(0, height-2)
	m.Refresh()
}

// Refresh re-renders the messages. The view stays at the bottom if it was
// already there.
func (m *Model) Refresh() {
	atBottom := m.viewport.AtBottom()
	msgs := m.lister.List()
	lines := make([]string, len(msgs))
	for i, msg := range msgs {
		lines[i] = renderMessage(msg)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		tui.Scrollbar(
			m.viewport.Height,
			m.viewport.TotalLineCount(),
			m.viewport.VisibleLineCount(),
			m.viewport.YOffset,
		),
	)
	return tui.Borderize(content, map[tui.BorderPosition]string{
		tui.TopLeft:      tui.Bold.Render(" logs "),
		tui.BottomMiddle: fmt.Sprintf(" %d%% ", int(m.viewport.ScrollPercent()*100)),
	})
}

func renderMessage(msg logging.Message) string {
	var levelColor lipgloss.TerminalColor
	switch msg.Level {
	case "ERROR":
		levelColor = tui.ErrorLogLevel
	case "WARN":
		levelColor = tui.WarnLogLevel
	case "DEBUG":
		levelColor = tui.DebugLogLevel
	case "INFO":
		levelColor = tui.InfoLogLevel
	}

	// combine message and attributes, separated by spaces, with each
	// attribute key/value joined with a '='
	var b strings.Builder
	b.WriteString(msg.Time.Format(timeFormat))
	b.WriteRune(' ')
	b.WriteString(tui.Bold.Foreground(levelColor).Width(5).Render(msg.Level))
	b.WriteRune(' ')
	b.WriteString(msg.Message)
	for _, attr := range msg.Attributes {
		b.WriteRune(' ')
		b.WriteString(tui.Bold.Render(attr.Key + "="))
		b.WriteString(attr.Value)
	}
	return b.String()
}

package tabbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabbed/internal/tui"
	"github.com/leg100/tabbed/internal/tui/keys"
)

// Height is the number of rows the bar occupies.
const Height = 2

const (
	maxLabelWidth = 24
	closeGlyph    = "×"
)

var (
	activeTabStyle   = tui.Bold.Foreground(tui.ActiveTabColor)
	inactiveTabStyle = tui.Regular.Foreground(tui.InactiveTabColor)
	arrowStyle       = tui.Bold.Foreground(tui.ActiveTabColor)
	disabledStyle    = tui.Regular.Foreground(tui.InactiveTabColor).Faint(true)
)

// SetWidth sets the number of columns available to the bar.
func (b *Bar) SetWidth(width int) {
	b.width = width
	b.ScrollToCurrent()
}

// HandleKey handles tab bar key bindings, and all keys while the context menu
// is open. It reports whether the key was handled.
func (b *Bar) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if b.menu != nil {
		return true, b.handleMenuKey(msg)
	}
	for n, kb := range keys.TabPositions {
		if key.Matches(msg, kb) {
			b.SelectTab(n)
			return true, nil
		}
	}
	switch {
	case key.Matches(msg, keys.Tabs.Previous):
		b.PrevTab()
	case key.Matches(msg, keys.Tabs.Next):
		b.NextTab()
	case key.Matches(msg, keys.Tabs.MoveLeft):
		b.MoveTab(b.current, b.current-1)
		b.ScrollToCurrent()
	case key.Matches(msg, keys.Tabs.MoveRight):
		b.MoveTab(b.current, b.current+1)
		b.ScrollToCurrent()
	case key.Matches(msg, keys.Tabs.Close):
		b.CloseTab(b.current)
	case key.Matches(msg, keys.Tabs.Menu):
		b.OpenMenu(b.current)
	default:
		return false, nil
	}
	return true, nil
}

func (b *Bar) cellText(i int) string {
	t := b.tabs[i]
	label := tui.TruncateRight(t.label, maxLabelWidth, "…")
	if t.icon == "" {
		return " " + label + " " + closeGlyph + " "
	}
	return " " + t.icon + " " + label + " " + closeGlyph + " "
}

func (b *Bar) cellWidth(i int) int {
	return tui.PrintableWidth(b.cellText(i))
}

func (b *Bar) View() string {
	var (
		headers   []string
		used      int
		overflows = b.overflows()
	)
	if overflows {
		headers = append(headers, arrow("‹", b.offset > 0))
		used += arrowWidth
	}
	spans := b.spans()
	for i, sp := range spans {
		if !sp.visible() {
			continue
		}
		style, underline := inactiveTabStyle, "─"
		if i == b.current {
			style, underline = activeTabStyle, "━"
		}
		w := sp.end - sp.start
		headers = append(headers, lipgloss.JoinVertical(lipgloss.Left,
			style.Render(b.cellText(i)),
			style.Render(strings.Repeat(underline, w)),
		))
		used += w
	}
	if b.width > 0 {
		remaining := b.width - used
		if overflows {
			remaining -= arrowWidth
		}
		if remaining > 0 {
			headers = append(headers, inactiveTabStyle.Render(
				strings.Repeat(" ", remaining)+"\n"+strings.Repeat("─", remaining),
			))
		}
		if overflows {
			last := spans[len(spans)-1]
			headers = append(headers, arrow("›", !last.visible()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, headers...)
}

func arrow(glyph string, enabled bool) string {
	style := disabledStyle
	if enabled {
		style = arrowStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(glyph+" "),
		inactiveTabStyle.Render(strings.Repeat("─", arrowWidth)),
	)
}

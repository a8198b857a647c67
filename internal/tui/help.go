package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 1, 0, 0)

	helpDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}).Margin(0, 3, 0, 0)

	helpHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}).Bold(true).Margin(0, 3, 0, 0)
)

// ShortHelpView renders help for key bindings on a single line, stopping
// before the maximum width is exceeded.
func ShortHelpView(bindings []key.Binding, maxWidth int) string {
	var (
		pairs []string
		width int
	)
	for _, kb := range bindings {
		if !kb.Enabled() || kb.Help().Key == "" {
			continue
		}
		pair := lipgloss.JoinHorizontal(lipgloss.Left,
			helpKeyStyle.Render(kb.Help().Key),
			helpDescStyle.Render(kb.Help().Desc),
		)
		width += Width(pair)
		if width > maxWidth {
			break
		}
		pairs = append(pairs, pair)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pairs...)
}

// HelpSection is a titled column of key bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// FullHelpView renders a table of columns describing key bindings, one
// column per section.
func FullHelpView(sections ...HelpSection) string {
	cols := make([]string, len(sections))
	for i, section := range sections {
		keys := make([]string, len(section.Bindings))
		descs := make([]string, len(section.Bindings))
		for j, kb := range section.Bindings {
			keys[j] = helpKeyStyle.Render(kb.Help().Key)
			descs[j] = helpDescStyle.Render(kb.Help().Desc)
		}
		cols[i] = lipgloss.JoinVertical(lipgloss.Top,
			helpHeadingStyle.Render(strings.ToUpper(section.Title)),
			lipgloss.JoinHorizontal(lipgloss.Left,
				strings.Join(keys, "\n"),
				strings.Join(descs, "\n"),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

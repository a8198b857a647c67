package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BorderPosition is a position in a border in which text can be embedded.
type BorderPosition int

const (
	TopLeft BorderPosition = iota
	TopMiddle
	BottomLeft
	BottomMiddle
)

var BorderColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(Grey)}

// Borderize wraps content in a thin border, embedding text in the top and
// bottom borders.
func Borderize(content string, embeddedText map[BorderPosition]string) string {
	var (
		border = lipgloss.NormalBorder()
		style  = Regular.Foreground(BorderColor)
		width  = lipgloss.Width(content)
	)
	horizontal := func(leftText, middleText, leftCorner, rightCorner string) string {
		i := width - lipgloss.Width(leftText) - lipgloss.Width(middleText)
		rightLen := max(0, min((width-lipgloss.Width(middleText))/2, i))
		leftLen := max(0, i-rightLen)
		s := leftText +
			style.Render(strings.Repeat(border.Top, leftLen)) +
			middleText +
			style.Render(strings.Repeat(border.Top, rightLen))
		// Make it fit in the space available between the two corners.
		s = Regular.Inline(true).MaxWidth(width).Render(s)
		return style.Render(leftCorner) + s + style.Render(rightCorner)
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		horizontal(embeddedText[TopLeft], embeddedText[TopMiddle], border.TopLeft, border.TopRight),
		Regular.
			BorderForeground(BorderColor).
			Border(border, false, true, false, true).
			Render(content),
		horizontal(embeddedText[BottomLeft], embeddedText[BottomMiddle], border.BottomLeft, border.BottomRight),
	)
}

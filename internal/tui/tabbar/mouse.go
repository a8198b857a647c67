package tabbar

import (
	tea "github.com/charmbracelet/bubbletea"
)

type drag struct {
	// index of the tab being dragged
	index int
}

// span is the range of columns [start, end) occupied by a tab. Tabs
// scrolled out of view have a start of -1.
type span struct {
	start, end int
}

func (s span) visible() bool {
	return s.start != -1
}

func (s span) contains(x int) bool {
	return s.visible() && x >= s.start && x < s.end
}

// closeColumn is the column of the tab's close glyph.
func (s span) closeColumn() int {
	return s.end - 2
}

const arrowWidth = 2

// overflows reports whether the tabs are wider than the bar.
func (b *Bar) overflows() bool {
	if b.width <= 0 {
		return false
	}
	var total int
	for i := range b.tabs {
		total += b.cellWidth(i)
	}
	return total > b.width
}

// spans lays out the tabs from the first visible tab, leaving room for
// scroll arrows when the tabs overflow.
func (b *Bar) spans() []span {
	spans := make([]span, len(b.tabs))
	for i := range spans {
		spans[i] = span{-1, -1}
	}
	var x int
	limit := b.width
	if b.overflows() {
		x = arrowWidth
		limit -= arrowWidth
	}
	for i := b.offset; i < len(b.tabs); i++ {
		w := b.cellWidth(i)
		if b.width > 0 && x+w > limit && i > b.offset {
			break
		}
		spans[i] = span{x, x + w}
		x += w
	}
	return spans
}

// ScrollToCurrent scrolls the bar so that the current tab is visible.
func (b *Bar) ScrollToCurrent() {
	if b.current == -1 {
		b.offset = 0
		return
	}
	if b.current < b.offset {
		b.offset = b.current
		return
	}
	for b.offset < b.current && !b.spans()[b.current].visible() {
		b.offset++
	}
}

// TabAt returns the index of the tab at column x, or -1.
func (b *Bar) TabAt(x int) int {
	for i, sp := range b.spans() {
		if sp.contains(x) {
			return i
		}
	}
	return -1
}

// HandleMouse handles mouse events within the bar, and over the context menu
// when it is open. It reports whether the event was handled.
func (b *Bar) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	if b.menu != nil {
		return true, b.handleMenuMouse(msg)
	}
	if msg.Action == tea.MouseActionRelease {
		handled := b.drag != nil
		b.drag = nil
		return handled, nil
	}
	if msg.Action == tea.MouseActionMotion {
		if b.drag == nil || msg.Button != tea.MouseButtonLeft {
			return false, nil
		}
		if i := b.TabAt(msg.X); i != -1 && i != b.drag.index {
			b.MoveTab(b.drag.index, i)
		}
		return true, nil
	}
	if msg.Y < 0 || msg.Y >= Height {
		return false, nil
	}

	overflows := b.overflows()
	i := b.TabAt(msg.X)
	switch msg.Button {
	case tea.MouseButtonLeft:
		switch {
		case i != -1 && msg.X == b.spans()[i].closeColumn():
			b.CloseTab(i)
		case i != -1:
			b.SetCurrentIndex(i)
			b.drag = &drag{index: i}
		case overflows && msg.X < arrowWidth:
			b.offset = max(0, b.offset-1)
		case overflows && msg.X >= b.width-arrowWidth:
			b.scrollRight()
		}
	case tea.MouseButtonMiddle:
		b.CloseTab(i)
	case tea.MouseButtonRight:
		b.OpenMenu(i)
	case tea.MouseButtonWheelUp:
		if b.current > 0 {
			b.SetCurrentIndex(b.current - 1)
		}
	case tea.MouseButtonWheelDown:
		b.SetCurrentIndex(b.current + 1)
	}
	return true, nil
}

func (b *Bar) scrollRight() {
	spans := b.spans()
	if len(spans) > 0 && !spans[len(spans)-1].visible() {
		b.offset++
	}
}

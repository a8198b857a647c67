package tabbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabbed/internal/editor"
	"github.com/leg100/tabbed/internal/tui"
	"github.com/leg100/tabbed/internal/tui/keys"
)

// Action is an entry in the context menu. An action without a Run func is a
// separator.
type Action struct {
	Label string
	Run   func() tea.Cmd
}

// Separator divides groups of actions.
var Separator = Action{}

func (a Action) separator() bool {
	return a.Run == nil
}

// ActionProvider supplies the context menu of a tab.
type ActionProvider interface {
	// SaveAndCloseActions returns actions that save or close editors.
	SaveAndCloseActions(ed *editor.Editor) []Action
	// FileActions returns actions that hand the editor's file to other
	// programs.
	FileActions(ed *editor.Editor) []Action
}

type menu struct {
	editor *editor.Editor
	items  []Action
	cursor int
	// column of the menu's left edge
	x int
}

// OpenMenu opens the context menu for the tab at index. It is a no-op if the
// index is out of range or there is no action provider.
func (b *Bar) OpenMenu(index int) {
	if b.actions == nil || index < 0 || index >= len(b.tabs) {
		return
	}
	ed := b.tabs[index].editor
	items := b.actions.SaveAndCloseActions(ed)
	if file := b.actions.FileActions(ed); len(file) > 0 {
		items = append(items, Separator)
		items = append(items, file...)
	}
	if len(items) == 0 {
		return
	}
	x := 0
	if sp := b.spans()[index]; sp.visible() {
		x = sp.start
	}
	b.menu = &menu{editor: ed, items: items, x: x}
	b.menu.cursor = b.menu.next(-1, 1)
}

// CloseMenu closes the context menu.
func (b *Bar) CloseMenu() {
	b.menu = nil
}

// MenuOpen reports whether the context menu is open.
func (b *Bar) MenuOpen() bool {
	return b.menu != nil
}

// MenuItems returns the labels of the context menu's items, with an empty
// label for each separator.
func (b *Bar) MenuItems() []string {
	if b.menu == nil {
		return nil
	}
	labels := make([]string, len(b.menu.items))
	for i, item := range b.menu.items {
		labels[i] = item.Label
	}
	return labels
}

// next returns the index of the next selectable item from i in direction dir,
// or i if there is none.
func (m *menu) next(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(m.items); j += dir {
		if !m.items[j].separator() {
			return j
		}
	}
	return i
}

func (b *Bar) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Menu.Up):
		b.menu.cursor = b.menu.next(b.menu.cursor, -1)
	case key.Matches(msg, keys.Menu.Down):
		b.menu.cursor = b.menu.next(b.menu.cursor, 1)
	case key.Matches(msg, keys.Menu.Select):
		return b.trigger(b.menu.cursor)
	case key.Matches(msg, keys.Menu.Close):
		b.menu = nil
	}
	return nil
}

func (b *Bar) handleMenuMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	if i := b.menuItemAt(msg.X, msg.Y); i != -1 {
		return b.trigger(i)
	}
	// clicking anywhere else dismisses the menu
	b.menu = nil
	return nil
}

// trigger closes the menu and runs the item at index.
func (b *Bar) trigger(i int) tea.Cmd {
	if i < 0 || i >= len(b.menu.items) || b.menu.items[i].separator() {
		return nil
	}
	item := b.menu.items[i]
	b.menu = nil
	return item.Run()
}

// menuItemAt returns the index of the menu item at the screen coordinates,
// or -1. The menu is drawn immediately beneath the bar.
func (b *Bar) menuItemAt(x, y int) int {
	width := b.menuWidth()
	if x <= b.menu.x || x >= b.menu.x+width-1 {
		return -1
	}
	// the border occupies the first row
	i := y - Height - 1
	if i < 0 || i >= len(b.menu.items) || b.menu.items[i].separator() {
		return -1
	}
	return i
}

func (b *Bar) menuWidth() int {
	var w int
	for _, item := range b.menu.items {
		w = max(w, tui.PrintableWidth(item.Label))
	}
	// padding and borders
	return w + 4
}

var (
	menuStyle         = tui.RoundedBorders.BorderForeground(tui.InactiveTabColor)
	menuItemStyle     = tui.Padded
	menuSelectedStyle = tui.Padded.Background(tui.MenuSelectedBackground).Bold(true)
	menuRuleStyle     = tui.Regular.Foreground(tui.MenuSeparatorColor)
)

func (b *Bar) menuView() string {
	inner := b.menuWidth() - 2
	rows := make([]string, len(b.menu.items))
	for i, item := range b.menu.items {
		switch {
		case item.separator():
			rows[i] = menuRuleStyle.Render(strings.Repeat("─", inner))
		case i == b.menu.cursor:
			rows[i] = menuSelectedStyle.Width(inner).Render(item.Label)
		default:
			rows[i] = menuItemStyle.Width(inner).Render(item.Label)
		}
	}
	return menuStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Overlay draws the context menu, if open, over the top left of body, which
// is the content rendered immediately beneath the bar.
func (b *Bar) Overlay(body string) string {
	if b.menu == nil {
		return body
	}
	lines := strings.Split(body, "\n")
	for i, row := range strings.Split(b.menuView(), "\n") {
		if i >= len(lines) {
			lines = append(lines, "")
		}
		left := tui.TruncateRight(lines[i], b.menu.x, "")
		if pad := b.menu.x - tui.PrintableWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		lines[i] = left + row
	}
	return strings.Join(lines, "\n")
}

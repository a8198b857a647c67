package keys

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

type tabs struct {
	Previous  key.Binding
	Next      key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Close     key.Binding
	Menu      key.Binding
}

// Tabs is the key map for the tab bar.
var Tabs = tabs{
	Previous: key.NewBinding(
		key.WithKeys("alt+j", "ctrl+pgup"),
		key.WithHelp("alt+j", "previous tab"),
	),
	Next: key.NewBinding(
		key.WithKeys("alt+k", "ctrl+pgdown"),
		key.WithHelp("alt+k", "next tab"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("alt+,"),
		key.WithHelp("alt+,", "move tab left"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys("alt+."),
		key.WithHelp("alt+.", "move tab right"),
	),
	Close: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("^w", "close tab"),
	),
	Menu: key.NewBinding(
		key.WithKeys("alt+m"),
		key.WithHelp("alt+m", "tab menu"),
	),
}

// TabPositions selects tabs by absolute position: alt+1 through alt+9 select
// the first nine tabs, and alt+0 the tenth.
var TabPositions = func() (bindings [10]key.Binding) {
	for i := range bindings {
		k := fmt.Sprintf("alt+%d", (i+1)%10)
		bindings[i] = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, fmt.Sprintf("tab %d", i+1)),
		)
	}
	return
}()

type menu struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// Menu is the key map for the tab context menu.
var Menu = menu{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu"),
	),
}

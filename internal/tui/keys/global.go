package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Open          key.Binding
	New           key.Binding
	Save          key.Binding
	SaveAs        key.Binding
	LoadSession   key.Binding
	SaveSessionAs key.Binding
	RenameSession key.Binding
	RemoveSession key.Binding
	Logs          key.Binding
	Escape        key.Binding
	Quit          key.Binding
	Help          key.Binding
}

var Global = global{
	Open: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("^o", "open file"),
	),
	New: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("^t", "new file"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("^s", "save"),
	),
	SaveAs: key.NewBinding(
		key.WithKeys("alt+s"),
		key.WithHelp("alt+s", "save as"),
	),
	LoadSession: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("^l", "load session"),
	),
	SaveSessionAs: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("^n", "save session as"),
	),
	RenameSession: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "rename session"),
	),
	RemoveSession: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("^x", "remove session"),
	),
	Logs: key.NewBinding(
		key.WithKeys("f12"),
		key.WithHelp("f12", "logs"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
}

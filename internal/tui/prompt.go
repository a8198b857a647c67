package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabbed/internal/tui/keys"
)

// PromptMsg enables the prompt widget.
type PromptMsg struct {
	// Prompt to display to the user.
	Prompt string
	// Set initial value for the user to edit.
	InitialValue string
	// Suggestions are offered for tab completion.
	Suggestions []string
	// Action to carry out when the user submits.
	Action PromptAction
	// Key that when pressed triggers the action and closes the prompt.
	// Defaults to enter.
	Key key.Binding
	// CancelAnyOther, if true, closes the prompt without taking the action
	// when any key other than Key is pressed.
	CancelAnyOther bool
}

type PromptAction func(text string) tea.Cmd

var submit = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "confirm"),
)

// TextPrompt asks the user for a line of text and passes it to action.
func TextPrompt(prompt, initial string, action PromptAction, suggestions ...string) tea.Cmd {
	return CmdHandler(PromptMsg{
		Prompt:       prompt + ": ",
		InitialValue: initial,
		Suggestions:  suggestions,
		Action:       action,
	})
}

// YesNoPrompt asks the user for a yes/no answer. If yes is given then the
// action is invoked.
func YesNoPrompt(prompt string, action tea.Cmd) tea.Cmd {
	return CmdHandler(PromptMsg{
		Prompt: fmt.Sprintf("%s (y/N): ", prompt),
		Action: func(_ string) tea.Cmd {
			return action
		},
		Key: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		CancelAnyOther: true,
	})
}

func NewPrompt(msg PromptMsg) (*Prompt, tea.Cmd) {
	model := textinput.New()
	model.Prompt = msg.Prompt
	model.SetValue(msg.InitialValue)
	if len(msg.Suggestions) > 0 {
		model.ShowSuggestions = true
		model.SetSuggestions(msg.Suggestions)
	}
	blink := model.Focus()

	trigger := msg.Key
	if len(trigger.Keys()) == 0 {
		trigger = submit
	}
	return &Prompt{
		model:          model,
		action:         msg.Action,
		trigger:        trigger,
		cancelAnyOther: msg.CancelAnyOther,
	}, blink
}

// Prompt is a widget that prompts the user for input and triggers an action.
type Prompt struct {
	model          textinput.Model
	action         PromptAction
	trigger        key.Binding
	cancelAnyOther bool
}

// HandleKey handles the user key press, and returns a command to be run, and
// whether the prompt should be closed.
func (p *Prompt) HandleKey(msg tea.KeyMsg) (closePrompt bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, p.trigger):
		cmd = p.action(p.model.Value())
		closePrompt = true
	case key.Matches(msg, keys.Global.Escape), p.cancelAnyOther:
		cmd = ReportInfo("canceled")
		closePrompt = true
	default:
		p.model, cmd = p.model.Update(msg)
	}
	return
}

// HandleBlink handles the bubbletea blink message.
func (p *Prompt) HandleBlink(msg tea.Msg) (cmd tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		// handled by HandleKey above.
		return nil
	}
	// The blink message type is unexported so unknown types are sent to the
	// model.
	p.model, cmd = p.model.Update(msg)
	return
}

func (p *Prompt) View() string {
	return p.model.View()
}

func (p *Prompt) HelpBindings() []key.Binding {
	if p.cancelAnyOther {
		return []key.Binding{p.trigger, key.NewBinding(key.WithHelp("n", "cancel"))}
	}
	return []key.Binding{p.trigger, keys.Global.Escape}
}

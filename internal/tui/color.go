package tui

import "github.com/charmbracelet/lipgloss"

const (
	Black           = lipgloss.Color("#000000")
	Red             = lipgloss.Color("#FF5353")
	Pink            = lipgloss.Color("206")
	Yellow          = lipgloss.Color("#DBBD70")
	Green           = lipgloss.Color("34")
	LightGreen      = lipgloss.Color("86")
	Blue            = lipgloss.Color("63")
	Grey            = lipgloss.Color("#737373")
	LightGrey       = lipgloss.Color("245")
	EvenLighterGrey = lipgloss.Color("253")
	DarkGrey        = lipgloss.Color("#606362")
	White           = lipgloss.Color("#ffffff")
)

var (
	ActiveTabColor   = lipgloss.AdaptiveColor{Dark: string(White), Light: string(Black)}
	InactiveTabColor = lipgloss.AdaptiveColor{Dark: string(LightGrey), Light: string(Grey)}

	MenuSelectedBackground = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(EvenLighterGrey)}
	MenuSeparatorColor     = lipgloss.AdaptiveColor{Dark: string(DarkGrey), Light: string(LightGrey)}

	DebugLogLevel = Blue
	InfoLogLevel  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
	WarnLogLevel  = Yellow
	ErrorLogLevel = Red

	ErrorColor = Red
	InfoColor  = lipgloss.AdaptiveColor{Dark: string(LightGreen), Light: string(Green)}
)

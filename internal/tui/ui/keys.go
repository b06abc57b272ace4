package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Tab navigation
	NextTab key.Binding
	PrevTab key.Binding
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding

	// Actions
	Back key.Binding
	Quit key.Binding
	Help key.Binding

	// Counter
	Tap        key.Binding
	Undo       key.Binding
	Reset      key.Binding
	PrevPhrase key.Binding
	NextPhrase key.Binding
	PrevTarget key.Binding
	NextTarget key.Binding

	// Toggles
	Voice key.Binding
	Sound key.Binding
	Dark  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation (vim + arrows)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		// Tab navigation
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev view"),
		),
		Tab1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "counter"),
		),
		Tab2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "history"),
		),
		Tab3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "stats"),
		),

		// Actions
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		// Counter
		Tap: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "count"),
		),
		Undo: key.NewBinding(
			key.WithKeys("backspace", "u"),
			key.WithHelp("u", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		PrevPhrase: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev phrase"),
		),
		NextPhrase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next phrase"),
		),
		PrevTarget: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev target"),
		),
		NextTarget: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next target"),
		),

		// Toggles
		Voice: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "voice"),
		),
		Sound: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sound"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark mode"),
		),
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the demo host.
type KeyMap struct {
	// Spawning
	Spawn      key.Binding
	Sticky     key.Binding
	Spam       key.Binding
	NextAnchor key.Binding

	// Pointer simulation
	Hover key.Binding
	Press key.Binding

	// Global
	Pause key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Spawn, k.Hover, k.Press, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Spawn, k.Sticky, k.Spam, k.NextAnchor},
		{k.Hover, k.Press, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Spawn: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "spawn toast"),
		),
		Sticky: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "spawn sticky toast"),
		),
		Spam: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle auto-spawn"),
		),
		NextAnchor: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "cycle anchor"),
		),
		Hover: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "hover next toast"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press hovered toast"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

package ui

import (
	"github.com/adriangreen/timebox/internal/config"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keybindings for the TUI
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Task operations
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Suggest key.Binding
	Cancel  key.Binding

	// Form and inline editing
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Back      key.Binding

	// Help and quit
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "ai suggestion"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "cancel suggestions"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewKeyMap creates a KeyMap from configuration, falling back to defaults for missing keys
func NewKeyMap(cfg *config.Config) KeyMap {
	km := DefaultKeyMap()

	if cfg == nil || len(cfg.KeyBindings) == 0 {
		return km
	}

	override := func(b *key.Binding, name, desc string) {
		k, ok := cfg.KeyBindings[name]
		if !ok || k == "" {
			return
		}
		*b = key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, desc),
		)
	}

	override(&km.Add, "add", "add task")
	override(&km.Edit, "edit", "rename")
	override(&km.Delete, "delete", "delete")
	override(&km.Suggest, "suggest", "ai suggestion")
	override(&km.Cancel, "cancel", "cancel suggestions")
	override(&km.Help, "help", "toggle help")

	// ctrl+c always quits
	if k, ok := cfg.KeyBindings["quit"]; ok && k != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(k, "ctrl+c"),
			key.WithHelp(k, "quit"),
		)
	}

	return km
}

// ShortHelp returns a short help text for the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Add, k.Edit, k.Delete, k.Suggest, k.Help, k.Quit}
}

// FullHelp returns the full help text
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Add, k.Edit, k.Delete},
		{k.Suggest, k.Cancel},
		{k.NextField, k.PrevField, k.Submit, k.Back},
		{k.Help, k.Quit},
	}
}

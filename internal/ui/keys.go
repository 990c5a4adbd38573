// ABOUTME: Key bindings for the widget shell
// ABOUTME: Minimal mode, reset, fullscreen and quit bindings with help text
package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Minimal    key.Binding
	Reset      key.Binding
	Fullscreen key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Minimal: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "minimal"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "reset"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "fullscreen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Minimal, k.Reset, k.Fullscreen, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// syncFullscreenHelp labels the fullscreen binding with the action it will take
func (k *keyMap) syncFullscreenHelp(active bool) {
	if active {
		k.Fullscreen.SetHelp("ctrl+f", "exit fullscreen")
		return
	}
	k.Fullscreen.SetHelp("ctrl+f", "fullscreen")
}

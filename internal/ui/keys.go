package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/deskfolio/deskfolio/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Content     ContentKeys
	Window      WindowKeys
}

// NewKeyMap creates a KeyMap. Pass nil to use the default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Content:     newContentKeys(defaults, customKeys),
		Window:      newWindowKeys(defaults, customKeys),
	}
}

// ShortHelp returns the bindings shown in the menu bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Window.CycleFocus.Binding,
		k.Window.Close.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp groups every binding by its definition group
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Application.CommandPalette.Binding, k.Application.Help.Binding, k.Application.ThemeToggle.Binding, k.Application.Quit.Binding},
		{
			k.Window.CycleFocus.Binding, k.Window.Launcher.Binding, k.Window.Close.Binding,
			k.Window.Minimize.Binding, k.Window.Maximize.Binding,
		},
		{
			k.Content.Up.Binding, k.Content.Down.Binding, k.Content.PrevQuestion.Binding,
			k.Content.NextQuestion.Binding, k.Content.Activate.Binding, k.Content.Reload.Binding,
		},
	}
}

// Tips returns the tips of every binding that has one
func (k KeyMap) Tips() []string {
	var out []string
	for _, kt := range []KeyWithTip{
		k.Application.CommandPalette, k.Application.Help, k.Application.ThemeToggle,
		k.Window.CycleFocus, k.Window.Maximize, k.Window.Launcher,
	} {
		if kt.Tip != "" {
			out = append(out, kt.Tip)
		}
	}
	return out
}

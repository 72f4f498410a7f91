package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/domain"
)

// windowActionMsg applies a window action to the focused window
type windowActionMsg struct {
	Name string
}

// toggleThemeMsg switches between the light and dark theme
type toggleThemeMsg struct{}

// ActionDispatcher maps desktop actions to UI messages.
// This keeps the command palette decoupled from specific message types.
type ActionDispatcher struct {
	hasWindow bool
}

// NewActionDispatcher creates a new action dispatcher.
// Window actions are dropped when no window is focused.
func NewActionDispatcher(hasWindow bool) *ActionDispatcher {
	return &ActionDispatcher{hasWindow: hasWindow}
}

// Dispatch returns the message for an action, or nil if it cannot run now.
func (d *ActionDispatcher) Dispatch(action domain.Action) tea.Msg {
	if action.RequiresWindow && !d.hasWindow {
		return nil
	}
	if action.IsOpenAction() {
		return OpenAppMsg{App: string(action.App)}
	}

	switch action.Name {
	case "help":
		return ShowHelpMsg{}
	case "quit":
		return QuitMsg{}
	case "theme_toggle":
		return toggleThemeMsg{}
	case "close_window", "cycle_focus", "maximize_window", "minimize_window":
		return windowActionMsg{Name: action.Name}
	}
	return nil
}

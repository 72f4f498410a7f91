package domain

import "strings"

const openActionPrefix = "open:"

// Action represents a user-invocable desktop action.
type Action struct {
	App            AppID // Set for open actions
	Description    string
	Name           string
	RequiresWindow bool
}

// Actions is the registry of desktop actions that are not tied to an app.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "close_window", Description: "Close the focused window", RequiresWindow: true},
	{Name: "cycle_focus", Description: "Focus the next window", RequiresWindow: true},
	{Name: "help", Description: "Show keyboard shortcuts"},
	{Name: "maximize_window", Description: "Maximize or restore the focused window", RequiresWindow: true},
	{Name: "minimize_window", Description: "Minimize the focused window", RequiresWindow: true},
	{Name: "quit", Description: "Leave the desktop"},
	{Name: "theme_toggle", Description: "Switch between light and dark theme"},
}

// OpenActions returns one "open" action per app, in desktop order
func OpenActions() []Action {
	out := make([]Action, len(Apps))
	for i, a := range Apps {
		out[i] = Action{App: a.ID, Description: "Open " + a.Title, Name: openActionPrefix + string(a.ID)}
	}
	return out
}

// GetActions returns every action: app launchers first, then desktop actions.
func GetActions() []Action {
	return append(OpenActions(), Actions...)
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for _, a := range GetActions() {
		if a.Name == name {
			return &a
		}
	}
	return nil
}

// GetActionsForContext returns actions filtered by context.
// If hasWindow is false, actions that act on the focused window are excluded.
func GetActionsForContext(hasWindow bool) []Action {
	all := GetActions()
	if hasWindow {
		return all
	}

	var filtered []Action
	for _, a := range all {
		if !a.RequiresWindow {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// IsOpenAction reports whether the action opens an app
func (a Action) IsOpenAction() bool {
	return strings.HasPrefix(a.Name, openActionPrefix)
}

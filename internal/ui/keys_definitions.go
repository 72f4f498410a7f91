package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Group     string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Desktop keys
	{Name: "quit", Group: "Desktop", Defaults: []string{"ctrl+c"}, Help: "leave the desktop"},
	{Name: "command_palette", Group: "Desktop", Defaults: []string{"ctrl+p"}, Help: "search apps and actions", TipFormat: "press %s to search apps and actions"},
	{Name: "help", Group: "Desktop", Defaults: []string{"f1"}, Help: "show keyboard shortcuts", TipFormat: "press %s for keyboard shortcuts"},
	{Name: "theme_toggle", Group: "Desktop", Defaults: []string{"ctrl+t"}, Help: "switch light/dark theme", TipFormat: "press %s to switch the theme"},

	// Window keys
	{Name: "cycle_focus", Group: "Windows", Defaults: []string{"tab"}, Help: "focus next window", TipFormat: "press %s to cycle through windows"},
	{Name: "close_window", Group: "Windows", Defaults: []string{"ctrl+w"}, Help: "close window"},
	{Name: "minimize_window", Group: "Windows", Defaults: []string{"ctrl+n"}, Help: "minimize window"},
	{Name: "maximize_window", Group: "Windows", Defaults: []string{"ctrl+f"}, Help: "maximize or restore window", TipFormat: "press %s to maximize the focused window"},
	{Name: "open_launcher", Group: "Windows", Defaults: []string{"ctrl+o"}, Help: "open the terminal", TipFormat: "press %s to jump to the terminal"},

	// In-window keys
	{Name: "up", Group: "Inside windows", Defaults: []string{"up", "k"}, Help: "previous item"},
	{Name: "down", Group: "Inside windows", Defaults: []string{"down", "j"}, Help: "next item"},
	{Name: "prev_question", Group: "Inside windows", Defaults: []string{"left", "h"}, Help: "previous quiz question"},
	{Name: "next_question", Group: "Inside windows", Defaults: []string{"right", "l"}, Help: "next quiz question"},
	{Name: "activate", Group: "Inside windows", Defaults: []string{"enter"}, Help: "answer, edit or open the selection"},
	{Name: "reload", Group: "Inside windows", Defaults: []string{"r"}, Help: "retry loading / reset quiz"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// KeyWithTip wraps a key.Binding with an optional tip shown in the menu bar
type KeyWithTip struct {
	Binding key.Binding
	Tip     string
}

// newTip formats a tip for the bound keys
func newTip(format string, keys ...string) string {
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return fmt.Sprintf(format, args...)
}

package ui

import "github.com/deskfolio/deskfolio/internal/config"

// WindowKeys defines key bindings that act on the focused window
type WindowKeys struct {
	Close      KeyWithTip
	CycleFocus KeyWithTip
	Launcher   KeyWithTip
	Maximize   KeyWithTip
	Minimize   KeyWithTip
}

func newWindowKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) WindowKeys {
	return WindowKeys{
		Close:      buildBinding("close_window", defaults, customKeys),
		CycleFocus: buildBinding("cycle_focus", defaults, customKeys),
		Launcher:   buildBinding("open_launcher", defaults, customKeys),
		Maximize:   buildBinding("maximize_window", defaults, customKeys),
		Minimize:   buildBinding("minimize_window", defaults, customKeys),
	}
}

// ContentKeys are interpreted by the app inside the focused window
type ContentKeys struct {
	Activate     KeyWithTip
	Down         KeyWithTip
	NextQuestion KeyWithTip
	PrevQuestion KeyWithTip
	Reload       KeyWithTip
	Up           KeyWithTip
}

func newContentKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ContentKeys {
	return ContentKeys{
		Activate:     buildBinding("activate", defaults, customKeys),
		Down:         buildBinding("down", defaults, customKeys),
		NextQuestion: buildBinding("next_question", defaults, customKeys),
		PrevQuestion: buildBinding("prev_question", defaults, customKeys),
		Reload:       buildBinding("reload", defaults, customKeys),
		Up:           buildBinding("up", defaults, customKeys),
	}
}

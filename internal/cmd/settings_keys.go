package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/ui"
)

// SettingsKeysCmd manages the desktop's keyboard shortcuts
type SettingsKeysCmd struct {
	List  SettingsKeysListCmd  `cmd:"list" help:"List shortcuts by group (desktop, windows, inside windows)" default:"1"`
	Reset SettingsKeysResetCmd `cmd:"reset" help:"Restore default keys"`
	Set   SettingsKeysSetCmd   `cmd:"set" help:"Bind keys to a shortcut"`
}

// SettingsKeysListCmd lists every shortcut with the keys it answers to
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd binds keys to a shortcut
type SettingsKeysSetCmd struct {
	Name string `arg:"" help:"Shortcut name (e.g. cycle_focus, close_window, help)"`
	Keys string `arg:"" help:"Keys, comma-separated for more than one (e.g. ctrl+g or up,k)"`
}

// SettingsKeysResetCmd drops custom keys
type SettingsKeysResetCmd struct {
	All  bool   `help:"Reset every shortcut"`
	Name string `arg:"" optional:"" help:"Shortcut name (e.g. cycle_focus, close_window, help)"`
}

// keyBindingRow is one shortcut as listed by `settings keys list`
type keyBindingRow struct {
	Action    string   `json:"action"`
	Custom    []string `json:"custom,omitempty"`
	Default   []string `json:"default"`
	Effective []string `json:"effective"`
	Group     string   `json:"group"`
	Name      string   `json:"name"`
}

// keyBindingRows returns the shortcuts in definition order, which keeps each group together
func keyBindingRows(custom config.KeyBindingsConfig) []keyBindingRow {
	rows := make([]keyBindingRow, 0, len(ui.AllKeyDefinitions))
	for _, def := range ui.AllKeyDefinitions {
		row := keyBindingRow{
			Action:    def.Help,
			Default:   def.Defaults,
			Effective: def.Defaults,
			Group:     def.Group,
			Name:      def.Name,
		}
		if keys := custom[def.Name]; len(keys) > 0 {
			row.Custom = keys
			row.Effective = keys
		}
		rows = append(rows, row)
	}
	return rows
}

// Run prints the shortcuts
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var custom config.KeyBindingsConfig
	if cli.settings != nil {
		custom = cli.settings.Keys
	}
	rows := keyBindingRows(custom)

	if s.Format == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Shortcuts (settings file: %s)\n", config.GetSettingsPath())
	writeKeyTable(os.Stdout, rows)
	fmt.Println()
	fmt.Println("* custom keys. Change them with 'deskfolio settings keys set <name> <keys>'.")
	return nil
}

// writeKeyTable prints one block per group
func writeKeyTable(out io.Writer, rows []keyBindingRow) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	group := ""
	for _, row := range rows {
		if row.Group != group {
			group = row.Group
			fmt.Fprintf(w, "\n%s\t\t\n", group)
		}
		keys := strings.Join(row.Effective, ", ")
		if len(row.Custom) > 0 {
			keys += " *"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", row.Name, keys, row.Action)
	}
	w.Flush()
}

// Run binds the keys, refusing keys another shortcut already answers to
func (s *SettingsKeysSetCmd) Run() error {
	if err := checkKeyName(s.Name); err != nil {
		return err
	}

	keys := parseKeyValues(s.Keys)
	if len(keys) == 0 {
		return fmt.Errorf("keys cannot be empty")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}

	defaults := ui.GetDefaultKeyBindings()[s.Name]
	if slices.Equal(keys, defaults) {
		delete(settings.Keys, s.Name)
	} else {
		settings.Keys[s.Name] = keys
	}

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Debug("Key binding saved", "name", s.Name, "keys", keys)
	fmt.Printf("%s now answers to: %s\n", s.Name, strings.Join(keys, ", "))
	return nil
}

// parseKeyValues splits comma-separated keys, dropping blanks
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Run drops the custom keys of one shortcut, or of all with --all
func (s *SettingsKeysResetCmd) Run() error {
	if !s.All {
		if s.Name == "" {
			return fmt.Errorf("name a shortcut or pass --all")
		}
		if err := checkKeyName(s.Name); err != nil {
			return err
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	changed := false
	if s.All {
		changed = len(settings.Keys) > 0
		settings.Keys = nil
	} else if _, ok := settings.Keys[s.Name]; ok {
		delete(settings.Keys, s.Name)
		changed = true
	}

	if changed {
		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
	}

	if s.All {
		fmt.Println("Every shortcut uses its default keys.")
		return nil
	}
	defaults := ui.GetDefaultKeyBindings()[s.Name]
	fmt.Printf("%s answers to its default keys: %s\n", s.Name, strings.Join(defaults, ", "))
	return nil
}

func checkKeyName(name string) error {
	if ui.IsValidKeyName(name) {
		return nil
	}
	return fmt.Errorf("unknown shortcut '%s'. Valid names: %s", name, strings.Join(ui.GetValidKeyNames(), ", "))
}

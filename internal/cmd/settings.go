package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/deskfolio/deskfolio/internal/config"
)

// SettingsCmd inspects settings
type SettingsCmd struct {
	Show    SettingsShowCmd    `cmd:"show" help:"Show the current settings" default:"1"`
	Example SettingsExampleCmd `cmd:"example" help:"Show every available option with an example value"`
	Path    SettingsPathCmd    `cmd:"path" help:"Print the settings file location"`
	Keys    SettingsKeysCmd    `cmd:"keys" help:"Manage keyboard shortcuts"`
}

// SettingsShowCmd prints settings.json as loaded, plus the resolved values
type SettingsShowCmd struct{}

// SettingsExampleCmd displays an example settings file
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsPathCmd prints the settings file path
type SettingsPathCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Printf("Settings file: %s\n\n", config.GetSettingsPath())
	fmt.Println(string(data))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Resolved\t")
	fmt.Fprintf(w, "db_path\t%s\n", settings.ResolvedDBPath())
	fmt.Fprintf(w, "github_user\t%s\n", settings.ResolvedGitHubUser())
	fmt.Fprintf(w, "snake_tick_ms\t%d\n", settings.ResolvedSnakeTickMS())
	return w.Flush()
}

// Run executes the example command
func (s *SettingsExampleCmd) Run() error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()
	writeExampleTable(os.Stdout, example)
	fmt.Println()
	fmt.Println("Create or edit this file to configure deskfolio.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}

// writeExampleTable prints one option per line in name order
func writeExampleTable(out io.Writer, example map[string]any) {
	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		var valueStr string
		switch v := example[name].(type) {
		case []string, map[string][]string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	w.Flush()
}

// Run executes the path command
func (s *SettingsPathCmd) Run() error {
	fmt.Println(config.GetSettingsPath())
	return nil
}

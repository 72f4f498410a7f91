package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deskfolio/deskfolio/internal/domain"
)

// StatsCmd shows saved game statistics
type StatsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type statsOutput struct {
	Guess domain.GuessStats `json:"guess"`
	Keys  []string          `json:"keys"`
	Snake domain.SnakeStats `json:"snake"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	ctx := context.Background()
	prefs := cli.Container.NewPreferences(ctx)

	keys, err := cli.Container.Store.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list saved keys: %w", err)
	}

	output := statsOutput{
		Guess: prefs.GuessStats(),
		Keys:  keys,
		Snake: prefs.SnakeStats(),
	}

	if s.Format == "json" {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	renderStatsTable(os.Stdout, output)
	return nil
}

// renderStatsTable displays the counters in table format
func renderStatsTable(w io.Writer, stats statsOutput) {
	fmt.Fprintln(w, "Game     Wins   Losses   Best")
	fmt.Fprintln(w, strings.Repeat("─", 30))
	fmt.Fprintf(w, "%-8s %-6d %-8d %s\n", "guess", stats.Guess.Wins, stats.Guess.Losses, "-")
	fmt.Fprintf(w, "%-8s %-6d %-8d %d\n", "snake", stats.Snake.Wins, stats.Snake.Losses, stats.Snake.Best)
	fmt.Fprintln(w)

	if len(stats.Keys) == 0 {
		fmt.Fprintln(w, "Nothing saved yet.")
		return
	}
	fmt.Fprintf(w, "Saved: %s\n", strings.Join(stats.Keys, ", "))
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/deskfolio/deskfolio/internal/adapters/clock"
	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/services"
)

// ExecCmd runs terminal commands without the desktop and prints the scrollback
type ExecCmd struct {
	Commands []string `arg:"" help:"Command lines, submitted in order (e.g. 'guess' '50')"`
	Ticks    int      `help:"Snake ticks to advance after the last command" default:"0"`
}

// Run executes the commands against a fresh terminal session
func (e *ExecCmd) Run(cli *CLI) error {
	logging.Logger.Info("Exec command started", "commands", len(e.Commands), "ticks", e.Ticks)

	scheduler := clock.NewManualScheduler()
	wm := services.NewWindowManager()
	term := services.NewTerminalSession(services.TerminalConfig{
		Host:        localHostName(),
		Opener:      wm,
		Preferences: cli.Container.NewPreferences(context.Background()),
		Scheduler:   scheduler,
		User:        localUserName(),
	})
	defer term.Close()

	runCommands(term, scheduler, e.Commands, e.Ticks)
	printScrollback(os.Stdout, term.Lines())
	if term.SnakeActive() {
		for _, row := range term.SnakeBoard() {
			fmt.Println(row)
		}
	}

	for _, w := range wm.Windows() {
		logging.Logger.Debug("Window opened by exec", "app", w.App, "id", w.ID)
	}
	return nil
}

// runCommands submits each command line, then advances the snake
func runCommands(term *services.TerminalSession, scheduler *clock.ManualScheduler, commands []string, ticks int) {
	for _, command := range commands {
		term.Run(command)
	}
	for i := 0; i < ticks && term.SnakeActive(); i++ {
		scheduler.Tick()
	}
}

// printScrollback writes the lines, marking errors
func printScrollback(w io.Writer, lines []domain.TerminalLine) {
	for _, line := range lines {
		if line.Kind == domain.LineError {
			fmt.Fprintf(w, "! %s\n", line.Text)
			continue
		}
		fmt.Fprintln(w, line.Text)
	}
}

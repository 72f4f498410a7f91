package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the desktop TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the desktop over SSH"`
	Exec     ExecCmd     `cmd:"exec" help:"Run terminal commands and print the scrollback"`
	Repos    ReposCmd    `cmd:"repos" help:"List the projects shown in the Projects window"`
	Stats    StatsCmd    `cmd:"stats" help:"Show saved game statistics"`
	Settings SettingsCmd `cmd:"settings" help:"Inspect settings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag holds its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DESKFOLIO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DESKFOLIO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Logging initialized", "file", logFilePath)

	// GORM's logger writes through logging.Logger, so the container comes after logging
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// keyBindings returns the custom key bindings from settings.json after validating them
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in settings.json: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// DesktopFlags are the flags shared by every command that builds a desktop
type DesktopFlags struct {
	SnakeTick  int    `help:"Snake tick period in milliseconds" default:"420" env:"DESKFOLIO_SNAKE_TICK_MS"`
	StartupApp string `help:"App opened when the desktop starts (empty for none)" default:"about" env:"DESKFOLIO_STARTUP_APP"`
}

// apply fills flags left at their defaults from settings.json
func (d *DesktopFlags) apply(settings *config.Settings) {
	if settings == nil {
		return
	}

	if d.SnakeTick == config.DefaultSnakeTickMS {
		if _, hasEnv := os.LookupEnv("DESKFOLIO_SNAKE_TICK_MS"); !hasEnv {
			d.SnakeTick = settings.ResolvedSnakeTickMS()
		}
	}

	if d.StartupApp == config.DefaultStartupApp {
		if _, hasEnv := os.LookupEnv("DESKFOLIO_STARTUP_APP"); !hasEnv {
			if settings.StartupApp != "" {
				d.StartupApp = settings.StartupApp
			}
		}
	}
}

// snakeInterval returns the snake tick period
func (d *DesktopFlags) snakeInterval() time.Duration {
	if d.SnakeTick <= 0 {
		return time.Duration(config.DefaultSnakeTickMS) * time.Millisecond
	}
	return time.Duration(d.SnakeTick) * time.Millisecond
}

// startupApp resolves the startup app name or alias
func (d *DesktopFlags) startupApp() (domain.AppID, error) {
	if d.StartupApp == "" {
		return "", nil
	}
	app, ok := domain.ResolveAlias(d.StartupApp)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownApp, d.StartupApp)
	}
	return app, nil
}

// RunCmd starts the TUI application
type RunCmd struct {
	DesktopFlags

	Dev bool `help:"Enable development mode (shows version info in dialogs)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.apply(cli.settings)

	startupApp, err := r.startupApp()
	if err != nil {
		return err
	}

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	logging.Logger.Info("Starting deskfolio TUI",
		"startup_app", startupApp,
		"snake_tick_ms", r.SnakeTick)

	ctx := context.Background()
	model := ui.NewModel(ui.Options{
		Context:       ctx,
		DevMode:       r.Dev,
		Host:          localHostName(),
		Keys:          keys,
		Preferences:   cli.Container.NewPreferences(ctx),
		Projects:      cli.Container.ProjectsService,
		SnakeInterval: r.snakeInterval(),
		StartupApp:    startupApp,
		User:          localUserName(),
	})
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// localUserName returns the login name used in the terminal prompt
func localUserName() string {
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "guest"
}

// localHostName returns the host name used in the terminal prompt
func localHostName() string {
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "portfolio"
}

package cmd

import (
	"os"

	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/server"
)

// ServeCmd serves the desktop over SSH
type ServeCmd struct {
	DesktopFlags

	AuthorizedKeys string `help:"authorized_keys file checked for public keys (default: ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Address to listen on" default:"localhost" env:"DESKFOLIO_SSH_HOST"`
	Open           bool   `help:"Accept every visitor instead of checking authorized_keys"`
	Port           string `help:"Port to listen on" default:"23234" env:"DESKFOLIO_SSH_PORT"`
}

// Run starts the SSH server and blocks until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	s.apply(cli.settings)
	s.applyServer(cli.settings)

	startupApp, err := s.startupApp()
	if err != nil {
		return err
	}

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	logging.Logger.Info("Serve command started",
		"host", s.Host,
		"port", s.Port,
		"open", s.Open)

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Desktop: server.DesktopConfig{
			Keys:          keys,
			Projects:      cli.Container.ProjectsService,
			SnakeInterval: s.snakeInterval(),
			StartupApp:    startupApp,
			Store:         cli.Container.Store,
			Theme:         cli.Container.defaultTheme(),
		},
		Host: s.Host,
		Open: s.Open,
		Port: s.Port,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}

// applyServer fills host and port left at their defaults from settings.json
func (s *ServeCmd) applyServer(settings *config.Settings) {
	if settings == nil {
		return
	}

	if s.Host == config.DefaultSSHHost {
		if _, hasEnv := os.LookupEnv("DESKFOLIO_SSH_HOST"); !hasEnv && settings.SSHHost != "" {
			s.Host = settings.SSHHost
		}
	}

	if s.Port == config.DefaultSSHPort {
		if _, hasEnv := os.LookupEnv("DESKFOLIO_SSH_PORT"); !hasEnv && settings.SSHPort != "" {
			s.Port = settings.SSHPort
		}
	}
}

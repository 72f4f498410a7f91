package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Config configures the SSH server
type Config struct {
	// AuthorizedKeysPath defaults to ~/.ssh/authorized_keys
	AuthorizedKeysPath string
	Desktop            DesktopConfig
	// HostKeyPath defaults to $DESKFOLIO_HOME/ssh/id_ed25519
	HostKeyPath string
	Host        string
	// Open accepts every visitor instead of checking authorized_keys
	Open bool
	Port string
}

// Server serves one desktop per SSH session
type Server struct {
	desktop    DesktopConfig
	desktops   *desktopRegistry
	host       string
	port       string
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config) (*Server, error) {
	s := &Server{
		desktop:  cfg.Desktop,
		desktops: newDesktopRegistry(),
		host:     cfg.Host,
		port:     cfg.Port,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		sshDir := config.GetSSHDir()
		if err := os.MkdirAll(sshDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create SSH directory: %w", err)
		}
		hostKeyPath = filepath.Join(sshDir, "id_ed25519")
	}

	authorizedKeysPath := cfg.AuthorizedKeysPath
	if authorizedKeysPath == "" && !cfg.Open {
		path, err := defaultAuthorizedKeysPath()
		if err != nil {
			return nil, err
		}
		authorizedKeysPath = path
	}
	auth := newAuthorizer(authorizedKeysPath, cfg.Open)

	options := []ssh.Option{
		wish.WithAddress(s.Addr()),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(auth.publicKey),
		// Middleware executes in reverse order (last to first)
		wish.WithMiddleware(
			s.desktops.releaseMiddleware(),
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	}
	if cfg.Open {
		options = append(options, wish.WithKeyboardInteractiveAuth(auth.keyboardInteractive))
	}

	wishServer, err := wish.NewServer(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Addr returns the host:port the server listens on
func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, s.port)
}

// Start starts the SSH server and blocks until an interrupt signal arrives
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.Addr())
	fmt.Printf("SSH server listening on %s\n", s.Addr())

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("SSH server failed: %w", err)
	case <-ctx.Done():
	}
	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

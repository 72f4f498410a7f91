package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/ports"
	"github.com/deskfolio/deskfolio/internal/services"
	"github.com/deskfolio/deskfolio/internal/ui"
)

// DesktopConfig is shared by every desktop the server hands out.
// Store and Projects are shared; everything else is created per session.
type DesktopConfig struct {
	Keys          config.KeyBindingsConfig
	Projects      *services.ProjectsService
	SnakeInterval time.Duration
	StartupApp    domain.AppID
	Store         ports.SnapshotStore
	Theme         domain.ThemeName
}

// hostName is the host shown in the terminal prompt of remote desktops
const hostName = "deskfolio"

// teaHandler creates an independent desktop for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.New().String()
	startTime := time.Now()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := ui.NewModel(s.desktopOptions(sess))
	s.desktops.track(sess.Context().SessionID(), model)

	go func() {
		<-sess.Context().Done()
		logging.Logger.Info("SSH session ended",
			"session_id", sessionID,
			"duration", time.Since(startTime).String())
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// desktopOptions builds the options of one session's desktop
func (s *Server) desktopOptions(sess ssh.Session) ui.Options {
	ctx := sess.Context()
	return ui.Options{
		Context:       ctx,
		Host:          hostName,
		Keys:          s.desktop.Keys,
		Preferences:   services.NewPreferencesService(ctx, s.desktop.Store, s.desktop.Theme),
		Projects:      s.desktop.Projects,
		Renderer:      bubbletea.MakeRenderer(sess),
		SnakeInterval: s.desktop.SnakeInterval,
		StartupApp:    s.desktop.StartupApp,
		User:          visitorName(sess.User()),
	}
}

// visitorName returns the SSH user name, or "guest" when there is none
func visitorName(user string) string {
	if user == "" {
		return "guest"
	}
	return user
}

package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deskfolio/deskfolio/internal/services"
)

const projectsFetchTimeout = 15 * time.Second

// loadProjectsCmd fetches the repositories off the event loop
func loadProjectsCmd(ctx context.Context, projects *services.ProjectsService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, projectsFetchTimeout)
		defer cancel()

		repos, err := projects.Load(ctx)
		return projectsLoadedMsg{Count: len(repos), Err: err}
	}
}

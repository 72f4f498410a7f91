package cmd

import (
	"context"
	"os"
	"time"

	adaptergithub "github.com/deskfolio/deskfolio/internal/adapters/github"
	adapterstorage "github.com/deskfolio/deskfolio/internal/adapters/storage"
	"github.com/deskfolio/deskfolio/internal/config"
	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/services"
)

const (
	githubMaxRetries        = 2
	githubRequestsPerSecond = 1
	githubTimeout           = 15 * time.Second
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ProjectsService *services.ProjectsService

	// Adapters
	Store *adapterstorage.SQLiteStore

	settings *config.Settings
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	store, err := adapterstorage.NewSQLiteStore(settings.ResolvedDBPath())
	if err != nil {
		return nil, err
	}

	githubClient := adaptergithub.NewClient(adaptergithub.Options{
		MaxRetries:        githubMaxRetries,
		RequestsPerSecond: githubRequestsPerSecond,
		Timeout:           githubTimeout,
		Token:             os.Getenv("GITHUB_TOKEN"),
	})
	logging.Logger.Debug("GitHub client created",
		"user", settings.ResolvedGitHubUser(),
		"authenticated", os.Getenv("GITHUB_TOKEN") != "")

	projectsService := services.NewProjectsService(githubClient, settings.ResolvedGitHubUser(), settings.PinnedRepos)

	return &Container{
		ProjectsService: projectsService,
		Store:           store,
		settings:        settings,
	}, nil
}

// NewPreferences loads the saved dock, theme, notes and game counters
func (c *Container) NewPreferences(ctx context.Context) *services.PreferencesService {
	return services.NewPreferencesService(ctx, c.Store, c.defaultTheme())
}

// defaultTheme is the theme used until one is saved
func (c *Container) defaultTheme() domain.ThemeName {
	if theme, ok := domain.ParseTheme(c.settings.Theme); ok {
		return theme
	}
	return domain.ThemeName(config.DefaultTheme)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

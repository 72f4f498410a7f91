package services

import (
	"context"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/ports"
)

// MaxProjects caps the number of repositories shown
const MaxProjects = 8

// ProjectsState is a snapshot of the projects loader
type ProjectsState struct {
	Err     error
	Loaded  bool
	Loading bool
	Repos   []domain.Repository
}

// ProjectsService fetches the owner's repositories once per process.
// Concurrent loads share one request; after a success no further request is made.
type ProjectsService struct {
	fetcher ports.RepoFetcher
	group   singleflight.Group
	pinned  []string
	user    string

	mu    sync.Mutex
	state ProjectsState
}

// NewProjectsService creates a loader for user's repositories, ordering pinned names first
func NewProjectsService(fetcher ports.RepoFetcher, user string, pinned []string) *ProjectsService {
	return &ProjectsService{fetcher: fetcher, pinned: pinned, user: user}
}

// User returns the GitHub account whose repositories are listed
func (s *ProjectsService) User() string {
	return s.user
}

// State returns the current loader state
func (s *ProjectsService) State() ProjectsState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Repos = slices.Clone(st.Repos)
	return st
}

// Load returns the selected repositories, fetching them if no earlier load succeeded
func (s *ProjectsService) Load(ctx context.Context) ([]domain.Repository, error) {
	s.mu.Lock()
	if s.state.Loaded {
		repos := slices.Clone(s.state.Repos)
		s.mu.Unlock()
		return repos, nil
	}
	s.mu.Unlock()

	v, err, shared := s.group.Do(s.user, func() (any, error) {
		s.mu.Lock()
		if s.state.Loaded {
			repos := s.state.Repos
			s.mu.Unlock()
			return repos, nil
		}
		s.state.Loading = true
		s.state.Err = nil
		s.mu.Unlock()

		logging.Logger.Info("Fetching repositories", "user", s.user)
		repos, err := s.fetcher.ListRepositories(ctx, s.user)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.Loading = false
		if err != nil {
			s.state.Err = err
			logging.Logger.Warn("Failed to fetch repositories", "user", s.user, "error", err)
			return nil, err
		}
		s.state.Repos = SelectProjects(repos, s.pinned)
		s.state.Loaded = true
		return s.state.Repos, nil
	})
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("Repositories ready", "shared", shared)
	return slices.Clone(v.([]domain.Repository)), nil
}

// SelectProjects drops forks and archived repositories, puts pinned names first
// in pin order, then the rest by most recent push, and caps the result at MaxProjects
func SelectProjects(repos []domain.Repository, pinned []string) []domain.Repository {
	rank := make(map[string]int, len(pinned))
	for i, name := range pinned {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, seen := rank[key]; !seen {
			rank[key] = i
		}
	}
	pinRank := func(r domain.Repository) int {
		if i, ok := rank[strings.ToLower(r.Name)]; ok {
			return i
		}
		return len(pinned)
	}

	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		if !r.Fork && !r.Archived {
			out = append(out, r)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Repository) int {
		if ra, rb := pinRank(a), pinRank(b); ra != rb {
			return ra - rb
		}
		return b.PushedAt.Compare(a.PushedAt)
	})

	if len(out) > MaxProjects {
		out = out[:MaxProjects]
	}
	return out
}

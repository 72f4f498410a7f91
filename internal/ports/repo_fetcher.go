package ports

import (
	"context"

	"github.com/deskfolio/deskfolio/internal/domain"
)

// RepoFetcher lists the public repositories of a user
type RepoFetcher interface {
	ListRepositories(ctx context.Context, user string) ([]domain.Repository, error)
}

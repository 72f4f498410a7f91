package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deskfolio/deskfolio/internal/domain"
	portsmocks "github.com/deskfolio/deskfolio/internal/ports/mocks"
)

func repoAt(name string, day int) domain.Repository {
	return domain.Repository{Name: name, PushedAt: time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)}
}

func TestSelectProjects_FiltersOrdersAndCaps(t *testing.T) {
	repos := []domain.Repository{
		repoAt("old", 1),
		repoAt("newest", 28),
		{Name: "forked", Fork: true, PushedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "archived", Archived: true},
		repoAt("Pinned-B", 2),
		repoAt("pinned-a", 3),
	}
	for i := 0; i < 10; i++ {
		repos = append(repos, repoAt(fmt.Sprintf("filler-%d", i), 10+i))
	}

	got := SelectProjects(repos, []string{"pinned-a", "pinned-b"})

	require.Len(t, got, MaxProjects)
	names := make([]string, 0, len(got))
	for _, r := range got {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"pinned-a", "Pinned-B", "newest", "filler-9", "filler-8", "filler-7", "filler-6", "filler-5"}, names)
}

func TestProjectsService_NoRefetchAfterSuccess(t *testing.T) {
	fetcher := portsmocks.NewMockRepoFetcher(t)
	fetcher.EXPECT().ListRepositories(mock.Anything, "me").
		Return([]domain.Repository{repoAt("a", 1), {Name: "f", Fork: true}}, nil).Once()

	svc := NewProjectsService(fetcher, "me", nil)

	first, err := svc.Load(context.Background())
	require.NoError(t, err)
	second, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 1)
	state := svc.State()
	assert.True(t, state.Loaded)
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
}

func TestProjectsService_ConcurrentLoadsFetchOnce(t *testing.T) {
	fetcher := portsmocks.NewMockRepoFetcher(t)
	fetcher.EXPECT().ListRepositories(mock.Anything, "me").
		RunAndReturn(func(ctx context.Context, user string) ([]domain.Repository, error) {
			time.Sleep(20 * time.Millisecond)
			return []domain.Repository{repoAt("a", 1)}, nil
		}).Once()

	svc := NewProjectsService(fetcher, "me", nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repos, err := svc.Load(context.Background())
			assert.NoError(t, err)
			assert.Len(t, repos, 1)
		}()
	}
	wg.Wait()
}

func TestProjectsService_FailureSetsErrorAndAllowsRetry(t *testing.T) {
	fetcher := portsmocks.NewMockRepoFetcher(t)
	fetcher.EXPECT().ListRepositories(mock.Anything, "me").
		Return(nil, fmt.Errorf("%w: status 500", domain.ErrFetchFailed)).Once()
	fetcher.EXPECT().ListRepositories(mock.Anything, "me").
		Return([]domain.Repository{repoAt("a", 1)}, nil).Once()

	svc := NewProjectsService(fetcher, "me", nil)

	_, err := svc.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	state := svc.State()
	assert.ErrorIs(t, state.Err, domain.ErrFetchFailed)
	assert.False(t, state.Loaded)

	repos, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, repos, 1)
	assert.NoError(t, svc.State().Err)
}

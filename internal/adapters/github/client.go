package github

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/deskfolio/deskfolio/internal/domain"
	"github.com/deskfolio/deskfolio/internal/logging"
	"github.com/deskfolio/deskfolio/internal/ports"
)

const (
	DefaultBaseURL = "https://api.github.com"
	userAgent      = "deskfolio/1.0"
)

// Client lists public repositories through the GitHub REST API
type Client struct {
	limiter *rate.Limiter
	resty   *resty.Client
}

var _ ports.RepoFetcher = (*Client)(nil)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	MaxRetries int
	// RequestsPerSecond throttles outgoing calls; zero or less disables throttling
	RequestsPerSecond float64
	// RetryWaitMin is the first backoff between attempts; later waits grow up to ten times it
	RetryWaitMin time.Duration
	Timeout      time.Duration
	Token        string
}

// NewClient creates a GitHub client with retrying transport and optional rate limiting
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RetryWaitMin <= 0 {
		opts.RetryWaitMin = 500 * time.Millisecond
	}

	// retryablehttp owns retries; resty keeps its own retry count at zero
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = opts.MaxRetries
	retryClient.RetryWaitMin = opts.RetryWaitMin
	retryClient.RetryWaitMax = 10 * opts.RetryWaitMin
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	restyClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", userAgent)
	restyClient.SetTransport(retryClient.StandardClient().Transport)

	if opts.Token != "" {
		restyClient.SetAuthToken(opts.Token)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{limiter: limiter, resty: restyClient}
}

type repoPayload struct {
	Archived    bool      `json:"archived"`
	Description *string   `json:"description"`
	Fork        bool      `json:"fork"`
	HTMLURL     string    `json:"html_url"`
	Language    *string   `json:"language"`
	Name        string    `json:"name"`
	PushedAt    time.Time `json:"pushed_at"`
	Stars       int       `json:"stargazers_count"`
}

// ListRepositories returns the user's public repositories, most recently updated first.
// Every failure wraps domain.ErrFetchFailed.
func (c *Client) ListRepositories(ctx context.Context, user string) ([]domain.Repository, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	var payload []repoPayload
	resp, err := c.resty.R().
		SetContext(ctx).
		SetPathParam("user", user).
		SetQueryParams(map[string]string{"per_page": "100", "sort": "updated"}).
		SetResult(&payload).
		Get("/users/{user}/repos")
	if err != nil {
		logging.Logger.Warn("github request failed", "user", user, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if resp.IsError() {
		logging.Logger.Warn("github returned error status", "user", user, "status", resp.StatusCode())
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode())
	}

	repos := make([]domain.Repository, 0, len(payload))
	for _, p := range payload {
		repos = append(repos, toDomain(p))
	}
	logging.Logger.Debug("github repositories fetched", "user", user, "count", len(repos))
	return repos, nil
}

func toDomain(p repoPayload) domain.Repository {
	repo := domain.Repository{
		Archived: p.Archived,
		Fork:     p.Fork,
		Name:     p.Name,
		PushedAt: p.PushedAt,
		Stars:    p.Stars,
		URL:      p.HTMLURL,
	}
	if p.Description != nil {
		repo.Description = *p.Description
	}
	if p.Language != nil {
		repo.Language = *p.Language
	}
	return repo
}

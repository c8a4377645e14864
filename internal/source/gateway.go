// Package source fetches per-date contribution counts from external activity
// feeds. The gateway performs no retries and no caching; a failure is reported
// once and retry policy, if any, belongs to the caller.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julianstephens/gryd/internal/models"
)

// ErrMissingCredentials is returned when a source requires an API token and
// none is configured.
var ErrMissingCredentials = errors.New("no API token configured")

// Gateway fetches a per-date completion-count mapping for one
// (source, identifier) pair. Dates are YYYY-MM-DD strings; values are raw
// activity counts, not yet clamped to any habit frequency.
type Gateway interface {
	Fetch(ctx context.Context, src models.DataSource, identifier string) (map[string]int, error)
}

// TokenProvider supplies API tokens for sources that need them.
type TokenProvider interface {
	GetToken(source models.DataSource) (string, error)
}

// Client is the HTTP implementation of Gateway. Base URLs are fields so tests
// can point them at a local server.
type Client struct {
	HTTPClient *http.Client
	Tokens     TokenProvider

	GitHubGraphQLURL string
	GitLabBaseURL    string
}

// NewClient returns a Client against the public GitHub and GitLab endpoints.
func NewClient(tokens TokenProvider) *Client {
	return &Client{
		HTTPClient:       http.DefaultClient,
		Tokens:           tokens,
		GitHubGraphQLURL: "https://api.github.com/graphql",
		GitLabBaseURL:    "https://gitlab.com",
	}
}

func (c *Client) Fetch(ctx context.Context, src models.DataSource, identifier string) (map[string]int, error) {
	switch src {
	case models.DataSourceGitHub:
		return c.fetchGitHub(ctx, identifier)
	case models.DataSourceGitLab:
		return c.fetchGitLab(ctx, identifier)
	default:
		return nil, fmt.Errorf("unsupported data source: %q", src)
	}
}

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adamcc31/devconnect-api/internal/domain"
)

const DefaultBaseURL = "https://api.github.com"

// Client fetches public repository metadata for a username. Single
// attempt per call: no caching, no retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		token:      token,
	}
}

type repoResponse struct {
	HTMLURL         string `json:"html_url"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// UserRepos returns the five most recently created public repos for the
// given username. Non-2xx upstream responses map to ErrNotFound,
// transport failures to ErrUpstreamUnavailable, malformed bodies to a
// plain error the caller surfaces as a server error.
func (c *Client) UserRepos(ctx context.Context, username string) ([]domain.RepoSummary, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "devconnect-api")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrNotFound
	}

	var repos []repoResponse
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github: malformed response body: %w", err)
	}

	summaries := make([]domain.RepoSummary, 0, len(repos))
	for _, r := range repos {
		summaries = append(summaries, domain.RepoSummary{
			URL:         r.HTMLURL,
			Name:        r.Name,
			Description: r.Description,
			Stars:       r.StargazersCount,
			Watchers:    r.WatchersCount,
			Forks:       r.ForksCount,
		})
	}
	return summaries, nil
}

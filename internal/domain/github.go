package domain

import "context"

// RepoSummary is a public repository as returned by the Github lookup.
type RepoSummary struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Watchers    int    `json:"watchers"`
	Forks       int    `json:"forks"`
}

type GithubUsecase interface {
	GetUserRepos(ctx context.Context, username string) ([]RepoSummary, error)
}

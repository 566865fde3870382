package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/github"

	"github.com/stretchr/testify/assert"
)

func TestUserRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octodev/repos", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"html_url":"https://github.com/octodev/tool","name":"tool","description":"a tool","stargazers_count":12,"watchers_count":12,"forks_count":3},
			{"html_url":"https://github.com/octodev/lib","name":"lib","description":"","stargazers_count":0,"watchers_count":0,"forks_count":0}
		]`))
	}))
	defer srv.Close()

	client := github.NewClient(srv.URL, "")
	repos, err := client.UserRepos(context.Background(), "octodev")
	assert.NoError(t, err)
	assert.Len(t, repos, 2)
	assert.Equal(t, domain.RepoSummary{
		URL:         "https://github.com/octodev/tool",
		Name:        "tool",
		Description: "a tool",
		Stars:       12,
		Watchers:    12,
		Forks:       3,
	}, repos[0])
}

func TestUserReposUpstreamMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := github.NewClient(srv.URL, "")
	_, err := client.UserRepos(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserReposTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := github.NewClient(srv.URL, "")
	_, err := client.UserRepos(context.Background(), "octodev")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestUserReposMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	client := github.NewClient(srv.URL, "")
	_, err := client.UserRepos(context.Background(), "octodev")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

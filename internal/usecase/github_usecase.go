package usecase

import (
	"context"
	"errors"

	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/apperror"
)

// RepoFetcher is the outbound port to the Github lookup client.
type RepoFetcher interface {
	UserRepos(ctx context.Context, username string) ([]domain.RepoSummary, error)
}

type githubUsecase struct {
	fetcher RepoFetcher
}

func NewGithubUsecase(fetcher RepoFetcher) domain.GithubUsecase {
	return &githubUsecase{fetcher: fetcher}
}

func (uc *githubUsecase) GetUserRepos(ctx context.Context, username string) ([]domain.RepoSummary, error) {
	repos, err := uc.fetcher.UserRepos(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No Github profile found")
		}
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, apperror.Unavailable("Github is unreachable", err)
		}
		return nil, err
	}
	return repos, nil
}

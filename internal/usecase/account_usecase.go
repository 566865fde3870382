package usecase

import (
	"context"

	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/logger"
)

type accountUsecase struct {
	postRepo    domain.PostRepository
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
}

func NewAccountUsecase(
	postRepo domain.PostRepository,
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
) domain.AccountUsecase {
	return &accountUsecase{
		postRepo:    postRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// DeleteAccount runs the cascading deletion as an ordered saga: posts,
// then profile, then user. The order guarantees that an interruption
// never leaves a record referencing an already-deleted parent. The steps
// are independent store operations, not one transaction; each is
// idempotent, so a PartialFailure is resolved by retrying the call.
func (uc *accountUsecase) DeleteAccount(ctx context.Context, userID string) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"delete_posts", func(ctx context.Context) error {
			return uc.postRepo.DeleteByAuthor(ctx, userID)
		}},
		{"delete_profile", func(ctx context.Context) error {
			return uc.profileRepo.DeleteByUserID(ctx, userID)
		}},
		{"delete_user", func(ctx context.Context) error {
			return uc.userRepo.Delete(ctx, userID)
		}},
	}

	for i, step := range steps {
		if err := step.run(ctx); err != nil {
			logger.Log.Error("account deletion interrupted",
				"user_id", userID, "step", step.name, "completed", i, "error", err)
			return &domain.PartialFailure{Completed: i, Step: step.name, Err: err}
		}
	}

	logger.Log.Info("account deleted", "user_id", userID)
	return nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteAccountOrder(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepo)
	profileRepo := new(MockProfileRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewAccountUsecase(postRepo, profileRepo, userRepo)

	var order []string
	postRepo.On("DeleteByAuthor", ctx, "user1").
		Run(func(args mock.Arguments) { order = append(order, "posts") }).Return(nil)
	profileRepo.On("DeleteByUserID", ctx, "user1").
		Run(func(args mock.Arguments) { order = append(order, "profile") }).Return(nil)
	userRepo.On("Delete", ctx, "user1").
		Run(func(args mock.Arguments) { order = append(order, "user") }).Return(nil)

	err := uc.DeleteAccount(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"posts", "profile", "user"}, order)
}

func TestDeleteAccountPartialFailure(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepo)
	profileRepo := new(MockProfileRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewAccountUsecase(postRepo, profileRepo, userRepo)

	storeErr := errors.New("connection reset")
	postRepo.On("DeleteByAuthor", ctx, "user1").Return(nil)
	profileRepo.On("DeleteByUserID", ctx, "user1").Return(storeErr)

	err := uc.DeleteAccount(ctx, "user1")
	assert.Error(t, err)

	var partial *domain.PartialFailure
	assert.True(t, errors.As(err, &partial))
	assert.Equal(t, 1, partial.Completed)
	assert.Equal(t, "delete_profile", partial.Step)
	assert.ErrorIs(t, err, storeErr)

	// The user record must never be touched after an earlier step failed.
	userRepo.AssertNotCalled(t, "Delete")
}

func TestDeleteAccountRetryCompletes(t *testing.T) {
	ctx := context.Background()
	postRepo := new(MockPostRepo)
	profileRepo := new(MockProfileRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewAccountUsecase(postRepo, profileRepo, userRepo)

	// Every step is a no-op success when the record is already gone, so a
	// retry after a partial failure runs to completion.
	postRepo.On("DeleteByAuthor", ctx, "user1").Return(nil)
	profileRepo.On("DeleteByUserID", ctx, "user1").Return(nil)
	userRepo.On("Delete", ctx, "user1").Return(nil)

	assert.NoError(t, uc.DeleteAccount(ctx, "user1"))
	assert.NoError(t, uc.DeleteAccount(ctx, "user1"))
}

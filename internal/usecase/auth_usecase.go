package usecase

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"

	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/apperror"
	"github.com/adamcc31/devconnect-api/pkg/token"
	"github.com/adamcc31/devconnect-api/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		validate: validate,
	}
}

func (uc *authUsecase) Register(ctx context.Context, in *domain.RegisterInput) (string, error) {
	if err := uc.validate.Struct(in); err != nil {
		return "", apperror.Validation(validation.FormatValidationErrors(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		AvatarURL:    gravatarURL(in.Email),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", apperror.BadRequest("User already exists")
		}
		return "", err
	}

	return uc.tokens.Issue(user.ID)
}

func (uc *authUsecase) Login(ctx context.Context, in *domain.LoginInput) (string, error) {
	if err := uc.validate.Struct(in); err != nil {
		return "", apperror.Validation(validation.FormatValidationErrors(err))
	}

	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", apperror.BadRequest("Invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", apperror.BadRequest("Invalid credentials")
	}

	return uc.tokens.Issue(user.ID)
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// gravatarURL derives the avatar from the email so registration never
// depends on an upload flow.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}

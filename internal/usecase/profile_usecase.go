package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/pkg/apperror"
	"github.com/adamcc31/devconnect-api/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (uc *profileUsecase) GetOwn(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("There is no profile for this user")
		}
		return nil, err
	}
	return profile, nil
}

func (uc *profileUsecase) GetAll(ctx context.Context) ([]domain.Profile, error) {
	return uc.profileRepo.GetAll(ctx)
}

// GetByUser returns a public profile by its owner's user id. A
// syntactically invalid id is collapsed into the same response as a
// genuine miss, matching the public API contract.
func (uc *profileUsecase) GetByUser(ctx context.Context, targetUserID string) (*domain.Profile, error) {
	if _, err := uuid.Parse(targetUserID); err != nil {
		return nil, apperror.BadRequest("Profile not found")
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// Upsert creates the caller's profile or replaces its scalar, skills and
// social fields. Nested experience/education lists are never touched here.
func (uc *profileUsecase) Upsert(ctx context.Context, userID string, in *domain.ProfileInput) (*domain.Profile, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	profile := &domain.Profile{
		UserID:         userID,
		Company:        in.Company,
		Website:        in.Website,
		Location:       in.Location,
		Bio:            in.Bio,
		Status:         in.Status,
		GithubUsername: in.GithubUsername,
		Skills:         domain.ParseSkills(in.Skills),
		Social: domain.SocialLinks{
			Website:   in.Website,
			Twitter:   in.Twitter,
			Facebook:  in.Facebook,
			Linkedin:  in.Linkedin,
			Youtube:   in.Youtube,
			Instagram: in.Instagram,
		},
	}

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Re-read to return the full aggregate with the owning user populated.
	return uc.profileRepo.GetByUserID(ctx, userID)
}

func (uc *profileUsecase) AddExperience(ctx context.Context, userID string, in *domain.ExperienceInput) (*domain.Profile, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("There is no profile for this user")
		}
		return nil, err
	}

	entry := domain.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}

	// Most recently added first.
	profile.Experience = append([]domain.Experience{entry}, profile.Experience...)

	if err := uc.profileRepo.SaveExperience(ctx, userID, profile.Experience); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *profileUsecase) RemoveExperience(ctx context.Context, userID, expID string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("There is no profile for this user")
		}
		return nil, err
	}

	entries, ok := removeExperienceByID(profile.Experience, expID)
	if !ok {
		return nil, apperror.New(http.StatusNotFound, "Experience entry not found", domain.ErrEntryNotFound)
	}
	profile.Experience = entries

	if err := uc.profileRepo.SaveExperience(ctx, userID, profile.Experience); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *profileUsecase) AddEducation(ctx context.Context, userID string, in *domain.EducationInput) (*domain.Profile, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("There is no profile for this user")
		}
		return nil, err
	}

	entry := domain.Education{
		ID:           uuid.NewString(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}

	profile.Education = append([]domain.Education{entry}, profile.Education...)

	if err := uc.profileRepo.SaveEducation(ctx, userID, profile.Education); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *profileUsecase) RemoveEducation(ctx context.Context, userID, eduID string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("There is no profile for this user")
		}
		return nil, err
	}

	entries, ok := removeEducationByID(profile.Education, eduID)
	if !ok {
		return nil, apperror.New(http.StatusNotFound, "Education entry not found", domain.ErrEntryNotFound)
	}
	profile.Education = entries

	if err := uc.profileRepo.SaveEducation(ctx, userID, profile.Education); err != nil {
		return nil, err
	}
	return profile, nil
}

// Removal targets entries by id, never by positional index. A missing id
// is reported, uniformly for both lists, instead of silently ignored.

func removeExperienceByID(entries []domain.Experience, id string) ([]domain.Experience, bool) {
	for i, e := range entries {
		if e.ID == id {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}

func removeEducationByID(entries []domain.Education, id string) ([]domain.Education, bool) {
	for i, e := range entries {
		if e.ID == id {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/adamcc31/devconnect-api/internal/domain"
	"github.com/adamcc31/devconnect-api/internal/usecase"
	"github.com/adamcc31/devconnect-api/pkg/apperror"
	"github.com/adamcc31/devconnect-api/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init()
}

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) SaveExperience(ctx context.Context, userID string, entries []domain.Experience) error {
	return m.Called(ctx, userID, entries).Error(0)
}

func (m *MockProfileRepo) SaveEducation(ctx context.Context, userID string, entries []domain.Education) error {
	return m.Called(ctx, userID, entries).Error(0)
}

func (m *MockProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) DeleteByAuthor(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func TestUpsertValidation(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, validator.New())

	t.Run("Should list every violated field before touching the store", func(t *testing.T) {
		_, err := uc.Upsert(context.Background(), "user1", &domain.ProfileInput{})
		assert.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Fields, "Status is required")
		assert.Contains(t, appErr.Fields, "Skills is required")
		mockRepo.AssertNotCalled(t, "Upsert")
	})
}

func TestUpsertBuildsAggregate(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, validator.New())
	ctx := context.Background()

	var saved *domain.Profile
	mockRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Profile")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Profile)
		}).Return(nil)
	mockRepo.On("GetByUserID", ctx, "user1").Return(&domain.Profile{UserID: "user1"}, nil)

	_, err := uc.Upsert(ctx, "user1", &domain.ProfileInput{
		Status:  "Developer",
		Skills:  "node, react, mongo",
		Twitter: "https://twitter.com/dev",
	})
	assert.NoError(t, err)

	assert.Equal(t, "user1", saved.UserID)
	assert.Equal(t, []string{"node", "react", "mongo"}, saved.Skills)
	assert.Equal(t, "https://twitter.com/dev", saved.Social.Twitter)
	// Keys the caller did not supply stay empty, so JSON omits them.
	assert.Empty(t, saved.Social.Youtube)
	assert.Empty(t, saved.Social.Facebook)
}

func TestUpsertRepeatedCallIsIdempotent(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, validator.New())
	ctx := context.Background()

	var aggregates []domain.Profile
	mockRepo.On("Upsert", ctx, mock.AnythingOfType("*domain.Profile")).
		Run(func(args mock.Arguments) {
			aggregates = append(aggregates, *args.Get(1).(*domain.Profile))
		}).Return(nil).Twice()
	stored := &domain.Profile{UserID: "user1", Status: "Developer", Skills: []string{"go"}}
	mockRepo.On("GetByUserID", ctx, "user1").Return(stored, nil)

	in := &domain.ProfileInput{Status: "Developer", Skills: "go", Company: "Initech"}

	first, err := uc.Upsert(ctx, "user1", in)
	assert.NoError(t, err)
	second, err := uc.Upsert(ctx, "user1", in)
	assert.NoError(t, err)

	// Same input twice writes the same aggregate both times and the
	// returned profile does not change between calls.
	assert.Len(t, aggregates, 2)
	assert.Equal(t, aggregates[0], aggregates[1])
	assert.Equal(t, first, second)
	mockRepo.AssertExpectations(t)
}

func TestAddExperience(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject missing required fields", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		_, err := uc.AddExperience(ctx, "user1", &domain.ExperienceInput{Title: "Engineer"})
		assert.Error(t, err)

		appErr := err.(*apperror.AppError)
		assert.Contains(t, appErr.Fields, "Company is required")
		assert.Contains(t, appErr.Fields, "From date is required")
		mockRepo.AssertNotCalled(t, "SaveExperience")
	})

	t.Run("Should insert at the head with a fresh id", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		existing := domain.Experience{ID: "old", Title: "Old Job", Company: "Acme", From: "2018-01-01"}
		mockRepo.On("GetByUserID", ctx, "user1").Return(&domain.Profile{
			UserID:     "user1",
			Experience: []domain.Experience{existing},
		}, nil)
		mockRepo.On("SaveExperience", ctx, "user1", mock.Anything).Return(nil)

		profile, err := uc.AddExperience(ctx, "user1", &domain.ExperienceInput{
			Title:   "Engineer",
			Company: "Initech",
			From:    "2020-05-01",
		})
		assert.NoError(t, err)
		assert.Len(t, profile.Experience, 2)
		assert.Equal(t, "Engineer", profile.Experience[0].Title)
		assert.NotEmpty(t, profile.Experience[0].ID)
		assert.Equal(t, "old", profile.Experience[1].ID)
	})

	t.Run("Should fail when the caller has no profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, "user1").Return(nil, domain.ErrNotFound)

		_, err := uc.AddExperience(ctx, "user1", &domain.ExperienceInput{
			Title: "Engineer", Company: "Initech", From: "2020-05-01",
		})
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})
}

func TestRemoveExperience(t *testing.T) {
	ctx := context.Background()

	t.Run("Should remove exactly the targeted entry", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, "user1").Return(&domain.Profile{
			UserID: "user1",
			Experience: []domain.Experience{
				{ID: "a", Title: "First"},
				{ID: "b", Title: "Second"},
				{ID: "c", Title: "Third"},
			},
		}, nil)
		mockRepo.On("SaveExperience", ctx, "user1", mock.Anything).Return(nil)

		profile, err := uc.RemoveExperience(ctx, "user1", "b")
		assert.NoError(t, err)
		assert.Len(t, profile.Experience, 2)
		assert.Equal(t, "a", profile.Experience[0].ID)
		assert.Equal(t, "c", profile.Experience[1].ID)
	})

	t.Run("Should report a missing id instead of silently succeeding", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, "user1").Return(&domain.Profile{
			UserID:     "user1",
			Experience: []domain.Experience{{ID: "a"}},
		}, nil)

		_, err := uc.RemoveExperience(ctx, "user1", "nope")
		assert.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
		mockRepo.AssertNotCalled(t, "SaveExperience")
	})
}

func TestRemoveEducation(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing id is reported the same way as for experience", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo, validator.New())

		mockRepo.On("GetByUserID", ctx, "user1").Return(&domain.Profile{
			UserID:    "user1",
			Education: []domain.Education{{ID: "a"}},
		}, nil)

		_, err := uc.RemoveEducation(ctx, "user1", "nope")
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*apperror.AppError).Code)
		mockRepo.AssertNotCalled(t, "SaveEducation")
	})
}

func TestGetByUserCollapsesMalformedID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo, validator.New())

	validMissing := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	mockRepo.On("GetByUserID", ctx, validMissing).Return(nil, domain.ErrNotFound)

	_, missErr := uc.GetByUser(ctx, validMissing)
	_, malformedErr := uc.GetByUser(ctx, "not-a-uuid")

	// Malformed id and genuine miss collapse into the same response class.
	assert.Equal(t, missErr.(*apperror.AppError).Code, malformedErr.(*apperror.AppError).Code)
	assert.Equal(t, missErr.(*apperror.AppError).Message, malformedErr.(*apperror.AppError).Message)
	mockRepo.AssertNotCalled(t, "GetByUserID", ctx, "not-a-uuid")
}

package domain

import (
	"context"
	"strings"
	"time"
)

// Profile is the root aggregate: one per user, owning the ordered
// experience and education lists. Nested entries carry server-assigned
// UUIDs and are removed individually by that id.
type Profile struct {
	ID             int64        `json:"id"`
	UserID         string       `json:"user_id"`
	User           *ProfileUser `json:"user,omitempty"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ProfileUser is the slice of the owning user embedded in profile reads.
type ProfileUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
}

// SocialLinks holds the fixed set of social URLs. Keys the caller did not
// supply are omitted from JSON rather than serialized as null.
type SocialLinks struct {
	Website   string `json:"website,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// ProfileInput is the upsert payload. Scalar and social fields fully
// replace their stored counterparts; experience/education are untouched.
type ProfileInput struct {
	Status         string `json:"status" validate:"required"`
	Skills         string `json:"skills" validate:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
}

type ExperienceInput struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from" validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationInput struct {
	School       string `json:"school" validate:"required"`
	Degree       string `json:"degree" validate:"required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required"`
	From         string `json:"from" validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ParseSkills splits a comma-separated skills string, trimming whitespace
// around each token and dropping empty ones. Order follows the input.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	// Upsert creates the profile or replaces its scalar/skills/social
	// fields in place, leaving nested lists untouched. Uniqueness per user
	// is enforced by the store, not by check-then-create.
	Upsert(ctx context.Context, profile *Profile) error
	SaveExperience(ctx context.Context, userID string, entries []Experience) error
	SaveEducation(ctx context.Context, userID string, entries []Education) error
	// DeleteByUserID is idempotent; deleting an absent profile succeeds.
	DeleteByUserID(ctx context.Context, userID string) error
}

type ProfileUsecase interface {
	GetOwn(ctx context.Context, userID string) (*Profile, error)
	GetAll(ctx context.Context) ([]Profile, error)
	GetByUser(ctx context.Context, targetUserID string) (*Profile, error)
	Upsert(ctx context.Context, userID string, in *ProfileInput) (*Profile, error)
	AddExperience(ctx context.Context, userID string, in *ExperienceInput) (*Profile, error)
	RemoveExperience(ctx context.Context, userID, expID string) (*Profile, error)
	AddEducation(ctx context.Context, userID string, in *EducationInput) (*Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID string) (*Profile, error)
}

type AccountUsecase interface {
	// DeleteAccount removes the user's posts, profile and user record in
	// that order. Not atomic; see PartialFailure.
	DeleteAccount(ctx context.Context, userID string) error
}

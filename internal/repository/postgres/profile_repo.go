package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adamcc31/devconnect-api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	p.id, p.user_id, p.company, p.website, p.location, p.bio, p.status,
	p.github_username, p.skills, p.social, p.experience, p.education,
	p.created_at, p.updated_at,
	u.id, u.name, u.avatar_url`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p          domain.Profile
		user       domain.ProfileUser
		skills     []string
		social     []byte
		experience []byte
		education  []byte
	)

	err := row.Scan(
		&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Bio, &p.Status,
		&p.GithubUsername, pq.Array(&skills), &social, &experience, &education,
		&p.CreatedAt, &p.UpdatedAt,
		&user.ID, &user.Name, &user.AvatarURL,
	)
	if err != nil {
		return nil, err
	}

	p.Skills = skills
	p.User = &user
	if err := json.Unmarshal(social, &p.Social); err != nil {
		return nil, fmt.Errorf("decode social: %w", err)
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return nil, fmt.Errorf("decode experience: %w", err)
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return nil, fmt.Errorf("decode education: %w", err)
	}
	if p.Experience == nil {
		p.Experience = []domain.Experience{}
	}
	if p.Education == nil {
		p.Education = []domain.Education{}
	}
	return &p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) GetAll(ctx context.Context) ([]domain.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// Upsert creates the profile or replaces scalar/skills/social fields in
// place. The UNIQUE(user_id) constraint plus ON CONFLICT makes concurrent
// upserts from the same user converge on a single row instead of racing a
// check-then-create. Experience and education are deliberately absent
// from the update list.
func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	social, err := json.Marshal(profile.Social)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (
			user_id, company, website, location, bio, status, github_username,
			skills, social, experience, education, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, '[]', '[]', NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			status = EXCLUDED.status,
			github_username = EXCLUDED.github_username,
			skills = EXCLUDED.skills,
			social = EXCLUDED.social,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Company, profile.Website, profile.Location,
		profile.Bio, profile.Status, profile.GithubUsername,
		pq.Array(profile.Skills), social,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) SaveExperience(ctx context.Context, userID string, entries []domain.Experience) error {
	return r.saveList(ctx, userID, "experience", entries)
}

func (r *profileRepository) SaveEducation(ctx context.Context, userID string, entries []domain.Education) error {
	return r.saveList(ctx, userID, "education", entries)
}

func (r *profileRepository) saveList(ctx context.Context, userID, column string, entries interface{}) error {
	body, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE profiles SET %s = $1, updated_at = NOW() WHERE user_id = $2`, column)
	tag, err := r.db.Exec(ctx, query, body, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByUserID removes the profile row. Zero rows affected is a
// success so the lifecycle saga can be retried.
func (r *profileRepository) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

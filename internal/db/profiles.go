package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/devlink/backend/internal/model"
)

const profileColumns = `
	p.id, p.user_id, p.company, p.website, p.location, p.status,
	p.skills, p.bio, p.github_username, p.experience, p.education,
	p.social, p.created_at, p.updated_at, u.name, u.avatar
`

func (db *Postgres) GetProfileByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`, profileColumns)

	return scanProfile(db.Pool.QueryRow(ctx, query, userID))
}

func (db *Postgres) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`, profileColumns)

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

// UpsertProfile inserts the profile or, when one already exists for the
// user, overwrites its scalar fields and social links. Experience and
// education columns are left alone; they have their own operations.
func (db *Postgres) UpsertProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	skills, err := json.Marshal(profile.Skills)
	if err != nil {
		return nil, err
	}
	social, err := json.Marshal(profile.Social)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO profiles (
			id, user_id, company, website, location, status,
			skills, bio, github_username, social, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10::jsonb, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			social = EXCLUDED.social,
			updated_at = NOW()
	`
	_, err = db.Pool.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Status,
		string(skills),
		profile.Bio,
		profile.GithubUsername,
		string(social),
	)
	if err != nil {
		return nil, err
	}

	return db.GetProfileByUserID(ctx, profile.UserID)
}

func (db *Postgres) DeleteProfileByUserID(ctx context.Context, userID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

// AddExperience prepends an entry, newest first.
func (db *Postgres) AddExperience(ctx context.Context, userID string, exp model.Experience) error {
	return db.prependEntry(ctx, "experience", userID, exp)
}

func (db *Postgres) RemoveExperience(ctx context.Context, userID, expID string) error {
	return db.removeEntry(ctx, "experience", userID, expID)
}

func (db *Postgres) AddEducation(ctx context.Context, userID string, edu model.Education) error {
	return db.prependEntry(ctx, "education", userID, edu)
}

func (db *Postgres) RemoveEducation(ctx context.Context, userID, eduID string) error {
	return db.removeEntry(ctx, "education", userID, eduID)
}

func (db *Postgres) prependEntry(ctx context.Context, column, userID string, entry any) error {
	encoded, err := json.Marshal([]any{entry})
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE profiles
		SET %s = $2::jsonb || %s, updated_at = NOW()
		WHERE user_id = $1
	`, column, column)

	tag, err := db.Pool.Exec(ctx, query, userID, string(encoded))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) removeEntry(ctx context.Context, column, userID, entryID string) error {
	query := fmt.Sprintf(`
		UPDATE profiles
		SET %s = COALESCE(
			(SELECT jsonb_agg(e) FROM jsonb_array_elements(%s) e WHERE e->>'id' <> $2),
			'[]'::jsonb
		), updated_at = NOW()
		WHERE user_id = $1
	`, column, column)

	tag, err := db.Pool.Exec(ctx, query, userID, entryID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProfile(row pgx.Row) (*model.Profile, error) {
	var (
		profile    model.Profile
		skills     []byte
		experience []byte
		education  []byte
		social     []byte
	)
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Company,
		&profile.Website,
		&profile.Location,
		&profile.Status,
		&skills,
		&profile.Bio,
		&profile.GithubUsername,
		&experience,
		&education,
		&social,
		&profile.CreatedAt,
		&profile.UpdatedAt,
		&profile.UserName,
		&profile.UserAvatar,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skills, &profile.Skills); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(experience, &profile.Experience); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(education, &profile.Education); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(social, &profile.Social); err != nil {
		return nil, err
	}
	return &profile, nil
}

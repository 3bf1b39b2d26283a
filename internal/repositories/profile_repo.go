package repositories

import (
	"context"

	"agrihub/internal/models"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
}

type profileRepo struct {
	db Database
}

func NewProfileRepository(db Database) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Upsert(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, first_name, last_name, phone, timezone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE
		SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
		    phone = EXCLUDED.phone, timezone = EXCLUDED.timezone, updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query, profile.ID, profile.FirstName, profile.LastName, profile.Phone, profile.Timezone)
	return err
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	query := `
		SELECT id, first_name, last_name, phone, timezone, created_at, updated_at
		FROM user_profiles
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.Phone, &profile.Timezone, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

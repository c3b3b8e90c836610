package repository

import (
	"context"
	"fmt"

	"cinelog/internal/data/entity"
	"cinelog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	Create(ctx context.Context, tx pgx.Tx, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
	Update(ctx context.Context, id uuid.UUID, patch *entity.ProfileUpdate) (*entity.Profile, error)
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

// Create inserts the profile row for a fresh account. Runs in the same
// transaction as the user insert.
func (r *profileRepository) Create(ctx context.Context, tx pgx.Tx, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, username, display_name, bio, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query,
		profile.ID,
		profile.Username,
		profile.DisplayName,
		profile.Bio,
		profile.AvatarURL,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create profile",
			zap.Error(err),
			zap.String("username", profile.Username),
		)
		return fmt.Errorf("create profile %s: %w", profile.Username, err)
	}

	return nil
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	query := `
		SELECT id, username, display_name, bio, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Username,
		&profile.DisplayName,
		&profile.Bio,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find profile by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find profile by ID %s: %w", id.String(), err)
	}

	return &profile, nil
}

func (r *profileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	query := `
		SELECT id, username, display_name, bio, avatar_url, created_at, updated_at
		FROM profiles
		WHERE username = $1
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, username).Scan(
		&profile.ID,
		&profile.Username,
		&profile.DisplayName,
		&profile.Bio,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find profile by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find profile by username %s: %w", username, err)
	}

	return &profile, nil
}

// Update patches only the whitelisted mutable fields. A username collision
// surfaces as a unique violation, not retried here.
func (r *profileRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.ProfileUpdate) (*entity.Profile, error) {
	query := `
		UPDATE profiles
		SET username     = COALESCE($2, username),
		    display_name = COALESCE($3, display_name),
		    bio          = COALESCE($4, bio),
		    avatar_url   = COALESCE($5, avatar_url),
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING id, username, display_name, bio, avatar_url, created_at, updated_at
	`

	var profile entity.Profile
	err := r.db.QueryRow(ctx, query, id,
		patch.Username,
		patch.DisplayName,
		patch.Bio,
		patch.AvatarURL,
	).Scan(
		&profile.ID,
		&profile.Username,
		&profile.DisplayName,
		&profile.Bio,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("update profile %s: %w", id.String(), err)
	}

	return &profile, nil
}

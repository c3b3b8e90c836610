package repository

import (
	"context"
	"fmt"

	"cinelog/internal/data/entity"
	"cinelog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *entity.UserFollow) error
	Delete(ctx context.Context, followerID, followingID uuid.UUID) error
	FindFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)
	FindFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error)
	Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

type followRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFollowRepository(db database.PgxIface, log *zap.Logger) FollowRepository {
	return &followRepository{
		db:  db,
		log: log.With(zap.String("repository", "follow")),
	}
}

// Create inserts a follow edge. A duplicate edge surfaces as a unique
// violation ("already following").
func (r *followRepository) Create(ctx context.Context, follow *entity.UserFollow) error {
	query := `
		INSERT INTO user_follows (id, follower_id, following_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		follow.ID,
		follow.FollowerID,
		follow.FollowingID,
		follow.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create follow",
			zap.Error(err),
			zap.String("follower_id", follow.FollowerID.String()),
			zap.String("following_id", follow.FollowingID.String()),
		)
		return fmt.Errorf("follow user %s: %w", follow.FollowingID.String(), err)
	}

	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	query := `DELETE FROM user_follows WHERE follower_id = $1 AND following_id = $2`

	result, err := r.db.Exec(ctx, query, followerID, followingID)
	if err != nil {
		r.log.Error("Failed to delete follow",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
		)
		return fmt.Errorf("unfollow user %s: %w", followingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	return nil
}

func (r *followRepository) FindFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	query := `
		SELECT p.id, p.username, p.display_name, p.bio, p.avatar_url, p.created_at, p.updated_at
		FROM user_follows f
		JOIN profiles p ON p.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC
	`

	return r.queryProfiles(ctx, query, userID, "find followers")
}

func (r *followRepository) FindFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	query := `
		SELECT p.id, p.username, p.display_name, p.bio, p.avatar_url, p.created_at, p.updated_at
		FROM user_follows f
		JOIN profiles p ON p.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`

	return r.queryProfiles(ctx, query, userID, "find following")
}

// Exists answers is-following with a single SQL predicate, no row transfer.
func (r *followRepository) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_follows
			WHERE follower_id = $1 AND following_id = $2
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check follow status",
			zap.Error(err),
			zap.String("follower_id", followerID.String()),
			zap.String("following_id", followingID.String()),
		)
		return false, fmt.Errorf("check follow status: %w", err)
	}

	return exists, nil
}

func (r *followRepository) queryProfiles(ctx context.Context, query string, userID uuid.UUID, op string) ([]*entity.Profile, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to "+op,
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("%s for user %s: %w", op, userID.String(), err)
	}
	defer rows.Close()

	var profiles []*entity.Profile
	for rows.Next() {
		var profile entity.Profile
		err := rows.Scan(
			&profile.ID,
			&profile.Username,
			&profile.DisplayName,
			&profile.Bio,
			&profile.AvatarURL,
			&profile.CreatedAt,
			&profile.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan profile row", zap.Error(err))
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		profiles = append(profiles, &profile)
	}

	return profiles, rows.Err()
}
